package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/vmindtech/endor/pkg/utils"
)

func LocalizerMiddleware(b *i18n.Bundle) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		l := i18n.NewLocalizer(b, c.Get(fiber.HeaderAcceptLanguage), utils.GetLanguageWithContext())
		utils.SetLocal(c, utils.LocalizerKey, l)

		return c.Next()
	}
}
