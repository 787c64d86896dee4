package utils

const (
	NotFoundErrCode   = "404"
	UnexpectedErrCode = "500"
	BodyParserErrCode = "400"

	NotFoundMsg   = "Not found!"
	UnexpectedMsg = "An unexpected error has occurred."
	BodyParserMsg = "The given values could not be parsed."
)

type ErrorBag struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Cause   error  `json:"cause"`
}

func (e ErrorBag) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Cause.Error()
}

func (e ErrorBag) GetCode() string {
	return e.Code
}
