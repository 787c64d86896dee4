package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vmindtech/endor/config"
	"github.com/vmindtech/endor/internal/dto/resource"
	"github.com/vmindtech/endor/pkg/constants"
	"github.com/vmindtech/endor/pkg/response"
)

type IAppHandler interface {
	App(c *fiber.Ctx) error
	Health(c *fiber.Ctx) error
}

type appHandler struct {
	webConfig   config.WebConfig
	endorConfig config.EndorConfig
}

func NewAppHandler(web config.WebConfig, endor config.EndorConfig) IAppHandler {
	return &appHandler{
		webConfig:   web,
		endorConfig: endor,
	}
}

func (a *appHandler) App(c *fiber.Ctx) error {
	return c.JSON(response.NewSuccessResponse(&resource.AppResource{
		App:     a.webConfig.AppName,
		Env:     a.webConfig.Env,
		Time:    time.Now(),
		Version: a.webConfig.Version,
	}))
}

func (a *appHandler) Health(c *fiber.Ctx) error {
	return c.JSON(&resource.HealthResource{
		Status: constants.OKStatus,
		APIURL: a.endorConfig.APIURL,
	})
}
