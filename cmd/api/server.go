package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"

	"github.com/vmindtech/endor/config"
	"github.com/vmindtech/endor/pkg/response"
	"github.com/vmindtech/endor/pkg/utils"
	"github.com/vmindtech/endor/pkg/validation"

	di "github.com/vmindtech/endor"
	"github.com/vmindtech/endor/internal/middleware"
	"github.com/vmindtech/endor/internal/route"
)

type application struct {
	Logger           *logrus.Logger
	LanguageBundle   *i18n.Bundle
	ConfigureManager config.IConfigureManager
}

func initApplication(a *application) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: a.ConfigureManager.GetWebConfig().AppName,
		// Override default error handler - Internal server err
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			errBag := utils.ErrorBag{Code: utils.UnexpectedErrCode, Message: utils.UnexpectedMsg, Cause: err}

			return c.Status(code).JSON(response.NewErrorResponse(c.UserContext(), errBag))
		},
	})

	// Health check routes
	a.addHealthCheckRoutes(app)

	// Common middleware
	a.addCommonMiddleware(app)

	r := di.InitRoute(a.Logger, a.ConfigureManager)
	r.SetupRoutes(&route.AppContext{
		App: app,
	})

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		errBag := utils.ErrorBag{Code: utils.NotFoundErrCode, Message: utils.NotFoundMsg}

		return c.Status(fiber.StatusNotFound).JSON(response.NewErrorResponse(c.UserContext(), errBag))
	})

	return app
}

func (a *application) addCommonMiddleware(app *fiber.App) {
	app.Use(middleware.RecoverMiddleware(a.Logger))
	app.Use(requestid.New(requestid.Config{
		Generator:  utils.GenerateRequestIDFunc,
		ContextKey: utils.RequestIDKey,
	}))
	app.Use(middleware.LoggerMiddleware(a.Logger))
	app.Use(middleware.LocalizerMiddleware(a.LanguageBundle))
	app.Use(cors.New())

	// Validator
	validator := validation.InitValidator()
	app.Use(func(c *fiber.Ctx) error {
		utils.SetLocal(c, utils.ValidatorKey, validator)

		return c.Next()
	})
}

func (a *application) addHealthCheckRoutes(app *fiber.App) {
	healthCheckHandler := di.InitHealthCheckHandler()
	app.Get("/liveness", healthCheckHandler.Liveness)
	app.Get("/readiness", healthCheckHandler.Readiness)
}
