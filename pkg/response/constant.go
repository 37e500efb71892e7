package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
)

// Error kinds reported in ErrorResp.Error.
const (
	KindBadRequest               = "BadRequest"
	KindNotFound                 = "NotFound"
	KindTooManyRequests          = "TooManyRequests"
	KindInternal                 = "InternalServerError"
	KindServiceUnavailable       = "ServiceUnavailable"
	KindIntentParsingFailed      = "IntentParsingFailed"
	KindRoutingFailed            = "RoutingFailed"
	KindResponseGenerationFailed = "ResponseGenerationFailed"
)
