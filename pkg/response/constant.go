package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "An unexpected error occurred. Please try again later."
	InternalServerErrorCode = 500
)
