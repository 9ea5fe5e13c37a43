package client

import (
	"context"

	"portfolio-gateway/internal/domain/entity"
)

// UnconfiguredProvider stands in when the Gemini client could not be built
// (typically a missing API key). The process keeps serving and every chat
// request gets the configuration-error response instead of a crash.
type UnconfiguredProvider struct{}

func NewUnconfiguredProvider() *UnconfiguredProvider {
	return &UnconfiguredProvider{}
}

func (*UnconfiguredProvider) Generate(context.Context, string) (string, error) {
	return "", entity.ErrProviderConfig
}
