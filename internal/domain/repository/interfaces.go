package repository

import (
	"context"
)

// Admission decides whether a client identifier may make another request right
// now. Implementations must make the check-and-record sequence atomic per
// identifier. A false result means the attempt was not recorded.
type Admission interface {
	Allow(ctx context.Context, clientID string) (bool, error)
}

// CompletionProvider is the external text-generation service boundary. It
// returns the generated text or a classified domain error.
type CompletionProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
