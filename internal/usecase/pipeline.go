package usecase

import (
	"context"
	"fmt"

	"portfolio-gateway/internal/domain/entity"
	"portfolio-gateway/internal/domain/repository"
)

// ChatPipeline runs one request through the four stages in fixed order:
// admission, validation, prompt assembly, completion. No stage calls back
// into an earlier one and a rejected request never reaches the provider.
type ChatPipeline struct {
	admission repository.Admission
	assembler *PromptAssembler
	provider  repository.CompletionProvider
}

func NewChatPipeline(admission repository.Admission, assembler *PromptAssembler, provider repository.CompletionProvider) *ChatPipeline {
	return &ChatPipeline{
		admission: admission,
		assembler: assembler,
		provider:  provider,
	}
}

// Execute returns the assistant's reply or a classified domain error. The
// delivery layer owns the mapping from errors to HTTP responses.
func (p *ChatPipeline) Execute(ctx context.Context, clientID string, body []byte) (string, error) {
	allowed, err := p.admission.Allow(ctx, clientID)
	if err != nil {
		return "", fmt.Errorf("admission check failed: %w", err)
	}
	if !allowed {
		return "", entity.ErrRateLimited
	}

	req, err := ParseMessage(body)
	if err != nil {
		return "", err
	}

	prompt := p.assembler.Assemble(req.Message)

	reply, err := p.provider.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return reply, nil
}
