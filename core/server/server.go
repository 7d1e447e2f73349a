package server

import (
	"errors"
	"fmt"
	"time"

	"ttrpg-pi/core/middleware/rayid"
	"ttrpg-pi/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// AppName is reported by Fiber and the index route.
const AppName = "TTRPG Pi API"

// New builds the Fiber app with the global middleware stack.
// Feature routes are added afterwards by the loader.
func New(logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               AppName,
		DisableStartupMessage: true, // We log our own startup message
		ErrorHandler:          errorHandler,
	})

	// RayID must be first to trace everything
	app.Use(rayid.New())
	app.Use(requestlog.New(logg))

	app.Get("/swagger/*", swagger.HandlerDefault)

	return app
}

// Addr joins host and port into a listen address.
func Addr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}

// Shutdown stops the app, waiting at most cfg.ShutdownTimeoutSeconds.
func Shutdown(app *fiber.App, cfg Config) error {
	timeout := time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return app.ShutdownWithTimeout(timeout)
}

// errorHandler renders unhandled errors (unknown routes, panics surfaced as
// errors) with the same {error, message} shape the handlers use.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   statusText(code),
		"message": err.Error(),
	})
}

func statusText(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return "Not found"
	case fiber.StatusMethodNotAllowed:
		return "Method not allowed"
	case fiber.StatusBadRequest:
		return "Invalid request"
	default:
		return "Internal error"
	}
}
