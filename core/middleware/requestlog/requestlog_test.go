package requestlog_test

import (
	"net/http/httptest"
	"testing"

	"ttrpg-pi/core/middleware/rayid"
	"ttrpg-pi/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(rayid.New())
	app.Use(requestlog.New(zap.New(core)))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "boom")
	})

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(rayid.HeaderName, "ray-1")
	_, err := app.Test(req)
	require.NoError(t, err)

	req = httptest.NewRequest("POST", "/boom", nil)
	req.Header.Set(rayid.HeaderName, "ray-2")
	_, err = app.Test(req)
	require.NoError(t, err)

	// Entries are read after both requests, so fields must not share the reused request buffers
	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "Request handled", entries[0].Message)
	assert.Equal(t, "ray-1", entries[0].ContextMap()["ray_id"])
	assert.Equal(t, "GET", entries[0].ContextMap()["method"])
	assert.Equal(t, "/health", entries[0].ContextMap()["path"])
	assert.EqualValues(t, 200, entries[0].ContextMap()["status"])

	assert.Equal(t, "Request error", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "ray-2", entries[1].ContextMap()["ray_id"])
	assert.Equal(t, "POST", entries[1].ContextMap()["method"])
	assert.Equal(t, "/boom", entries[1].ContextMap()["path"])
}
