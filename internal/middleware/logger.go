package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/vmindtech/endor/pkg/utils"
)

func LoggerMiddleware(l *logrus.Logger) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) (err error) {
		t := time.Now()
		err = c.Next()

		entry := l.WithFields(logrus.Fields{
			"request":  getRequestLogFields(c),
			"response": getResponseLogFields(c, c.Response().StatusCode(), t),
		})

		if c.Response().StatusCode() >= fiber.StatusInternalServerError {
			entry.Error("weblogger")
		} else {
			entry.Info("weblogger")
		}

		return err
	}
}

func getRequestLogFields(c *fiber.Ctx) logrus.Fields {
	return logrus.Fields{
		"id":     c.Locals(utils.RequestIDKey),
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	}
}

func getResponseLogFields(c *fiber.Ctx, status int, t time.Time) logrus.Fields {
	fields := logrus.Fields{
		"status":   status,
		"duration": fmt.Sprint(time.Since(t).Round(time.Millisecond)),
	}

	if errorType, ok := c.Locals(utils.ErrorTypeKey).(string); ok {
		fields["errorType"] = errorType
	}

	return fields
}
