package utils

// Context

const (
	RequestIDKey = "requestid"
	ValidatorKey = "validator"
	LocalizerKey = "localizer"
	ErrorTypeKey = "errortype"
)

// HTTP Header
const (
	AuthorizationHeaderKey = "Authorization"
)

const (
	BearerAuthType = "Bearer"
)
