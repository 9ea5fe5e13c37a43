package entity

import "errors"

// Standard domain errors
var (
	ErrRateLimited         = errors.New("too many requests from this client")
	ErrProviderRateLimited = errors.New("generation provider rate limit exceeded")
	ErrProviderConfig      = errors.New("generation provider is not configured correctly")
	ErrEmptyCompletion     = errors.New("generation provider returned no text")
)

// ValidationError carries the exact user-facing reason a message was rejected.
// The handler maps any ValidationError to a 400 response.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var (
	ErrBodyInvalid      = &ValidationError{Reason: "Invalid request body"}
	ErrMessageRequired  = &ValidationError{Reason: "Message is required"}
	ErrMessageNotString = &ValidationError{Reason: "Message must be a string"}
	ErrMessageEmpty     = &ValidationError{Reason: "Message cannot be empty"}
	ErrMessageTooLong   = &ValidationError{Reason: "Message is too long (max 5000 characters)"}
	ErrMessageInjection = &ValidationError{Reason: "Invalid message format"}
)
