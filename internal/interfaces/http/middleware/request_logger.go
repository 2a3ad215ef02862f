package middleware

import (
	"strings"
	"time"

	"github.com/PavaniTiago/bcm-maturity-api/internal/infrastructure/logger"
	"github.com/gofiber/fiber/v2"
)

// RequestLogger measures response times on the scoring routes. Score
// calculation walks every response of an assessment, so these are the calls
// worth watching.
func RequestLogger(log *logger.Logger) fiber.Handler {
	monitoredRoutes := []string{
		"/assessments",
		"/recommendations",
	}

	return func(c *fiber.Ctx) error {
		path := c.Path()

		shouldMonitor := false
		for _, route := range monitoredRoutes {
			if strings.HasPrefix(path, route) {
				shouldMonitor = true
				break
			}
		}
		if !shouldMonitor {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		log.Info("request",
			"method", c.Method(),
			"path", path,
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
		)
		return err
	}
}
