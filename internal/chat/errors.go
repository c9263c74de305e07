package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrMessageRequired = errors.New("message is required")
)
