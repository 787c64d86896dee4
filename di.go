package endor

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vmindtech/endor/config"
	"github.com/vmindtech/endor/internal/handler"
	"github.com/vmindtech/endor/internal/route"
	"github.com/vmindtech/endor/internal/service"
)

func InitHealthCheckHandler() handler.IHealthCheckHandler {
	iHealthCheckHandler := handler.NewHealthCheckHandler()
	return iHealthCheckHandler
}

func InitRoute(l *logrus.Logger, cm config.IConfigureManager) route.IRoute {
	endorConfig := cm.GetEndorConfig()
	httpClient := &http.Client{Timeout: endorConfig.HTTPTimeout}

	iAuthService := service.NewAuthService(l, endorConfig, httpClient)
	iEndorService := service.NewEndorService(l, endorConfig, httpClient, iAuthService)
	iAppService := service.NewAppService(l, iEndorService)
	iAppHandler := handler.NewAppHandler(cm.GetWebConfig(), endorConfig)
	iSummaryHandler := handler.NewSummaryHandler(l, iAppService, endorConfig)
	iRoute := route.NewRoute(iAppHandler, iSummaryHandler)
	return iRoute
}
