package response

import (
	"context"

	"github.com/vmindtech/endor/pkg/constants"
	"github.com/vmindtech/endor/pkg/utils"
)

type ErrorAttribute struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type ErrorSchema struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HTTPSuccessResponse struct {
	Data interface{} `json:"data"`
}

type HTTPErrorResponse struct {
	Error ErrorSchema `json:"error"`
}

// SummaryErrorResponse is the error body of the summary endpoints; ErrorType
// is one of the constants.ErrType* kinds.
type SummaryErrorResponse struct {
	Status     string           `json:"status"`
	ErrorType  string           `json:"errorType"`
	Message    string           `json:"message"`
	Attributes []ErrorAttribute `json:"attributes,omitempty"`
}

func NewSuccessResponse(data interface{}) HTTPSuccessResponse {
	return HTTPSuccessResponse{
		Data: data,
	}
}

func NewErrorResponse(ctx context.Context, err error, msg ...string) HTTPErrorResponse {
	schema := ErrorSchema{
		Code:    utils.UnexpectedErrCode,
		Message: utils.UnexpectedMsg,
	}

	if errorBag, ok := err.(utils.ErrorBag); ok {
		schema.Code = errorBag.GetCode()

		if len(msg) > 0 {
			schema.Message = msg[0]
		} else if translated := utils.TranslateByIDWithContext(ctx, schema.Code); translated != "" {
			schema.Message = translated
		} else if errorBag.Message != "" {
			schema.Message = errorBag.Message
		}
	}

	return HTTPErrorResponse{Error: schema}
}

func NewSummaryErrorResponse(ctx context.Context, errorType string, err error) SummaryErrorResponse {
	var template map[string]interface{}
	if err != nil {
		template = map[string]interface{}{"Error": err.Error()}
	}

	message := utils.TranslateByTemplateWithContext(ctx, errorType, template)
	if message == "" {
		message = errorType
	}

	return SummaryErrorResponse{
		Status:    constants.FailedStatus,
		ErrorType: errorType,
		Message:   message,
	}
}

func NewSummaryValidationErrorResponse(ctx context.Context, errors map[string]string) SummaryErrorResponse {
	resp := NewSummaryErrorResponse(ctx, constants.ErrTypeMissingAnnotation, nil)
	for k, v := range errors {
		resp.Attributes = append(resp.Attributes, ErrorAttribute{
			Name:    k,
			Message: v,
		})
	}

	return resp
}

func NewBodyParserErrorResponse() HTTPErrorResponse {
	return HTTPErrorResponse{
		Error: ErrorSchema{
			Code:    utils.BodyParserErrCode,
			Message: utils.BodyParserMsg,
		},
	}
}
