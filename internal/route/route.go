package route

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vmindtech/endor/internal/handler"
)

type AppContext struct {
	App *fiber.App
}

type IRoute interface {
	SetupRoutes(ac *AppContext)
}

type route struct {
	appHandler     handler.IAppHandler
	summaryHandler handler.ISummaryHandler
}

func NewRoute(
	apHandler handler.IAppHandler,
	smHandler handler.ISummaryHandler,
) IRoute {
	return &route{
		appHandler:     apHandler,
		summaryHandler: smHandler,
	}
}

func (r *route) SetupRoutes(ac *AppContext) {
	api := ac.App.Group("/api")

	// v1 routes
	v1Group := api.Group("/v1")

	r.appRoutes(v1Group)
	r.summaryRoutes(v1Group)
}

func (r *route) appRoutes(fr fiber.Router) {
	appGroup := fr.Group("/")
	appGroup.Get("/", r.appHandler.App)
	appGroup.Get("/health", r.appHandler.Health)
}

func (r *route) summaryRoutes(fr fiber.Router) {
	summaryGroup := fr.Group("/summary")
	summaryGroup.Post("/", r.summaryHandler.Summary)
	summaryGroup.Post("/report", r.summaryHandler.Report)
}
