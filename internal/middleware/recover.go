package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/vmindtech/endor/pkg/response"
	"github.com/vmindtech/endor/pkg/stacktrace"
	"github.com/vmindtech/endor/pkg/utils"
)

const (
	skipStackTraceFrame = 4
)

// RecoverMiddleware turns a panicking handler into a 500 with the generic
// error schema and logs the panic with its stack.
func RecoverMiddleware(l *logrus.Logger) func(c *fiber.Ctx) (err error) {
	return func(c *fiber.Ctx) (err error) {
		t := time.Now()

		defer func() {
			if r := recover(); r != nil {
				cause, ok := r.(error)
				if !ok {
					cause = fmt.Errorf("%v", r)
				}

				l.WithFields(logrus.Fields{
					"request":  getRequestLogFields(c),
					"response": getResponseLogFields(c, fiber.StatusInternalServerError, t),
					"error": fiber.Map{
						"message": cause.Error(),
						"stack":   stacktrace.NewStackTrace(skipStackTraceFrame),
					},
				}).Errorf("recover: %v", cause)

				errBag := utils.ErrorBag{Code: utils.UnexpectedErrCode, Message: utils.UnexpectedMsg, Cause: cause}
				err = c.Status(fiber.StatusInternalServerError).JSON(response.NewErrorResponse(c.UserContext(), errBag))
			}
		}()

		return c.Next()
	}
}
