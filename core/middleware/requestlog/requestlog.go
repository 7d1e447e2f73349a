package requestlog

import (
	"time"

	"ttrpg-pi/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// New returns a middleware logging every request with its ray id.
// It must be registered after the rayid middleware.
func New(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		start := time.Now()

		err := c.Next()

		// Ctx strings alias the request buffer, which fasthttp reuses
		method := utils.CopyString(c.Method())
		path := utils.CopyString(c.Path())
		if err != nil {
			l.Error("Request error", zap.String("method", method), zap.String("path", path), zap.Error(err))
			return err
		}

		l.Info("Request handled",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("ip", utils.CopyString(c.IP())),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return nil
	}
}
