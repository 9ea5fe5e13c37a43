package usecase

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"

	"portfolio-gateway/internal/domain/entity"
)

// MaxMessageLength is the cap on a single chat message, counted in runes.
const MaxMessageLength = 5000

// Best-effort denylist of phrasings that try to override the system
// instructions. This is not a security boundary; the system prompt itself
// instructs the model to stay on topic.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore.*instructions`),
	regexp.MustCompile(`(?i)system.*prompt`),
	regexp.MustCompile(`(?i)disregard`),
	regexp.MustCompile(`(?i)forget.*about`),
}

// ParseMessage rejects a structurally invalid body at the boundary instead of
// branching on runtime shapes later. Missing key, wrong type, emptiness,
// length and the injection screen each get their own user-facing reason.
// A returned ChatRequest always satisfies the message invariants.
func ParseMessage(body []byte) (entity.ChatRequest, error) {
	var raw struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return entity.ChatRequest{}, entity.ErrBodyInvalid
	}
	if len(raw.Message) == 0 || bytes.Equal(raw.Message, []byte("null")) {
		return entity.ChatRequest{}, entity.ErrMessageRequired
	}

	var message string
	if err := json.Unmarshal(raw.Message, &message); err != nil {
		return entity.ChatRequest{}, entity.ErrMessageNotString
	}

	if err := ValidateMessage(message); err != nil {
		return entity.ChatRequest{}, err
	}
	return entity.ChatRequest{Message: message}, nil
}

// ValidateMessage applies the content checks in order, short-circuiting on the
// first failure. It never modifies the message; oversized input is rejected,
// not truncated.
func ValidateMessage(message string) error {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return entity.ErrMessageEmpty
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return entity.ErrMessageTooLong
	}
	for _, pattern := range injectionPatterns {
		if pattern.MatchString(trimmed) {
			return entity.ErrMessageInjection
		}
	}
	return nil
}
