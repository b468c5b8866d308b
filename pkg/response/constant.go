package response

const (
	DefaultErrorMessage    = "Something went wrong"
	MessageTooManyRequests = "Too many requests"
)
