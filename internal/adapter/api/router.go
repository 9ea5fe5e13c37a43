package api

import (
	"errors"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the Fiber application with the shared error handler so tests
// exercise the same 405/panic behavior as the real server.
func NewApp(handler *ChatHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Portfolio Chat Gateway",
		ErrorHandler: errorHandler,
	})
	SetupRouter(app, handler)
	return app
}

func SetupRouter(app *fiber.App, handler *ChatHandler) {
	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"version": os.Getenv("APP_VERSION"),
			"env":     os.Getenv("ENV"),
		})
	})

	app.Post("/chat", handler.HandleChat)
}

// errorHandler catches everything the handlers did not: wrong HTTP methods,
// unknown routes and recovered panics all come out as the JSON error shape,
// never as a bare transport error.
func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch fiberErr.Code {
		case fiber.StatusMethodNotAllowed:
			return fail(c, fiber.StatusMethodNotAllowed, "Method not allowed. Use POST to send messages.")
		case fiber.StatusNotFound:
			return fail(c, fiber.StatusNotFound, "Not found")
		}
	}

	log.Printf("[CHAT-GATEWAY] unhandled error: %v", err)
	return fail(c, fiber.StatusInternalServerError, "An unexpected error occurred. Please try again.")
}
