// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs every request with its method, route, status, response
// size and duration. The request id comes from the requestid middleware.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	reqLog := log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		reqID, _ := c.Locals("requestid").(string)
		reqLog.Infow("request",
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"bytes", len(c.Response().Body()),
			"duration", time.Since(start).String(),
			"request_id", reqID,
		)
		return err
	}
}
