package response

// Messages
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong. Please try again later."
)

// Error codes
const (
	InternalServerErrorCode = 500
)

// Time formats used by Date and DateTime.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
