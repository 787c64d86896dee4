package utils

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// SetLocal stores v in the request locals and in the user context handed to
// services, which is where the translation and validation helpers look.
func SetLocal(c *fiber.Ctx, key string, v interface{}) {
	c.Locals(key, v)
	c.SetUserContext(context.WithValue(c.UserContext(), key, v)) //nolint:staticcheck
}
