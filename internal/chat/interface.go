package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Process routes one user message through scope guarding, deterministic
	// resolution or the model-assisted path, and always returns a well-formed
	// envelope. The only error it returns is ErrMessageRequired.
	Process(ctx context.Context, input ChatInput) (Envelope, error)
}
