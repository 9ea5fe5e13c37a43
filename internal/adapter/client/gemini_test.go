package client

import (
	"errors"
	"fmt"
	"testing"

	"portfolio-gateway/internal/domain/entity"

	"google.golang.org/genai"
)

func TestClassifyProviderErrorStructured(t *testing.T) {
	tests := []struct {
		name string
		code int
		want error
	}{
		{"provider 429", 429, entity.ErrProviderRateLimited},
		{"unauthorized", 401, entity.ErrProviderConfig},
		{"forbidden", 403, entity.ErrProviderConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyProviderError(genai.APIError{Code: tt.code, Message: "upstream detail"})
			if !errors.Is(err, tt.want) {
				t.Fatalf("classifyProviderError(code=%d) = %v, want %v", tt.code, err, tt.want)
			}
		})
	}
}

func TestClassifyProviderErrorSubstringFallback(t *testing.T) {
	tests := []struct {
		msg  string
		want error
	}{
		{"API key not valid. Please pass a valid API key.", entity.ErrProviderConfig},
		{"missing credential for generativelanguage.googleapis.com", entity.ErrProviderConfig},
		{"googleapi: Error 429: quota exceeded", entity.ErrProviderRateLimited},
		{"rate limit exceeded for model", entity.ErrProviderRateLimited},
	}

	for _, tt := range tests {
		err := classifyProviderError(errors.New(tt.msg))
		if !errors.Is(err, tt.want) {
			t.Errorf("classifyProviderError(%q) = %v, want %v", tt.msg, err, tt.want)
		}
	}
}

func TestClassifyProviderErrorPassThrough(t *testing.T) {
	// Unrecognized failures keep their message for the 500 response, wrapped
	// or not, but never get promoted to a classified category.
	raw := fmt.Errorf("connection reset by peer")
	err := classifyProviderError(raw)
	if errors.Is(err, entity.ErrProviderConfig) || errors.Is(err, entity.ErrProviderRateLimited) {
		t.Fatalf("generic error misclassified: %v", err)
	}
	if err.Error() != raw.Error() {
		t.Fatalf("provider message lost: %v", err)
	}
}
