package http

import (
	"errors"

	"parts-support-chat/internal/chat"
)

var errWrapMessageRequired = errors.New("message is required")

// mapError translates domain errors into caller-facing ones. The use case is
// designed to degrade internally, so this list stays short.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrMessageRequired):
		return errWrapMessageRequired
	default:
		return err
	}
}
