package api

import (
	"errors"
	"log"
	"strings"

	"portfolio-gateway/internal/domain/entity"
	"portfolio-gateway/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

const rateLimitedMessage = "Too many requests. Please wait a moment before sending another message."

type ChatHandler struct {
	pipeline *usecase.ChatPipeline
}

func NewChatHandler(pipeline *usecase.ChatPipeline) *ChatHandler {
	return &ChatHandler{pipeline: pipeline}
}

func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	reply, err := h.pipeline.Execute(c.Context(), clientIdentifier(c), c.Body())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(entity.ChatResponse{
		Success: true,
		Message: reply,
	})
}

// respondError is the single point that turns a pipeline error into the
// uniform response shape. Provider detail may be surfaced, credentials and
// raw configuration never are (the classified errors carry fixed text).
func respondError(c *fiber.Ctx, err error) error {
	var vErr *entity.ValidationError
	switch {
	case errors.Is(err, entity.ErrRateLimited):
		return fail(c, fiber.StatusTooManyRequests, rateLimitedMessage)
	case errors.As(err, &vErr):
		return fail(c, fiber.StatusBadRequest, vErr.Reason)
	case errors.Is(err, entity.ErrProviderRateLimited):
		return fail(c, fiber.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
	case errors.Is(err, entity.ErrProviderConfig):
		log.Printf("[CHAT-GATEWAY] provider configuration error: %v", err)
		return fail(c, fiber.StatusInternalServerError, "API configuration error. Please check environment variables.")
	case errors.Is(err, entity.ErrEmptyCompletion):
		return fail(c, fiber.StatusInternalServerError, "No response from AI")
	default:
		log.Printf("[CHAT-GATEWAY] chat request failed: %v", err)
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(entity.ChatResponse{
		Success: false,
		Error:   message,
	})
}

// clientIdentifier derives the rate-limit key from proxy headers. Clients
// arriving without either header all share the "unknown" bucket, which is a
// deliberate coarse-graining: behind no proxy the limit becomes global.
func clientIdentifier(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if ip := c.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return "unknown"
}
