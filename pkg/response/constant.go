package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ErrorCodeBadRequest      = 400
	ErrorCodeTooManyRequests = 429
	InternalServerErrorCode  = 500
	ErrorCodeUnavailable     = 503
)
