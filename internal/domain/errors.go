package domain

import "errors"

var (
	ErrInteractiveStdin = errors.New("stdin is a terminal, expected a hook payload")
	ErrInvalidPayload   = errors.New("invalid hook payload")
	ErrMissingEventType = errors.New("missing --event-type argument")
	ErrPayloadTooLarge  = errors.New("hook payload too large")
)
