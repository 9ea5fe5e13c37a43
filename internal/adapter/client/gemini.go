package client

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio-gateway/internal/domain/entity"

	"google.golang.org/genai"
)

// Generation settings tuned for short professional Q&A grounded in a résumé.
// Safety thresholds are permissive because the prompt content is a public CV.
const (
	defaultTimeout  = 15 * time.Second
	maxOutputTokens = 500
	temperature     = 0.7
	topP            = 0.9
	topK            = 40
)

// GeminiProvider calls the Gemini API once per request. No retries, no
// fallback model: a failed call is classified and reported immediately.
type GeminiProvider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return NewGeminiProviderFromClient(c, model), nil
}

func NewGeminiProviderFromClient(c *genai.Client, model string) *GeminiProvider {
	return &GeminiProvider{
		client:  c,
		model:   model,
		timeout: defaultTimeout,
	}
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	// Scoped timeout so one slow provider call cannot hang the request
	// forever; cancelling the inbound request aborts the call as well.
	genCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.client.Models.GenerateContent(genCtx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: maxOutputTokens,
		Temperature:     genai.Ptr[float32](temperature),
		TopP:            genai.Ptr[float32](topP),
		TopK:            genai.Ptr[float32](topK),
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
		},
	})
	if err != nil {
		return "", classifyProviderError(err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", entity.ErrEmptyCompletion
	}
	return text, nil
}

// classifyProviderError maps a raw provider failure onto the domain error
// taxonomy. The structured API error code is authoritative; the substring
// match is a best-effort fallback for wrapped or non-API errors and has not
// been verified against every provider failure mode.
func classifyProviderError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 429:
			return entity.ErrProviderRateLimited
		case 401, 403:
			return entity.ErrProviderConfig
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "api_key") || strings.Contains(msg, "credential"):
		return entity.ErrProviderConfig
	case strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "rate limit"):
		return entity.ErrProviderRateLimited
	}
	return err
}
