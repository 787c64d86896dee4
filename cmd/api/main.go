package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vmindtech/endor/config"
	"github.com/vmindtech/endor/pkg/healthcheck"
	"github.com/vmindtech/endor/pkg/localizer"
	"github.com/vmindtech/endor/pkg/logging"
)

func main() {
	configureManager := config.NewConfigureManager()

	logstashConfig := configureManager.GetLogstashConfig()
	openSearchConfig := configureManager.GetOpenSearchConfig()

	logger := logging.NewLogger(logging.Config{
		Service: logging.ServiceConfig{
			Env:     configureManager.GetWebConfig().Env,
			AppName: configureManager.GetWebConfig().AppName,
			Version: configureManager.GetWebConfig().Version,
		},
		Level: configureManager.GetWebConfig().LogLevel,
		Logstash: &logging.LogstashConfig{
			Host: logstashConfig.Host,
			Port: logstashConfig.Port,
		},
		OpenSearch: &logging.OpenSearchConfig{
			Addresses: openSearchConfig.Addresses,
			Username:  openSearchConfig.Username,
			Password:  openSearchConfig.Password,
			Index:     openSearchConfig.Index,
			Insecure:  openSearchConfig.Insecure,
		},
	})

	if err := configureManager.GetEndorConfig().Validate(); err != nil {
		logger.Fatalf("invalid endor configuration: %v", err)
	}

	logger.Info("starting app")

	app := initApplication(&application{
		Logger: logger,
		LanguageBundle: localizer.InitLocalizer(
			configureManager.GetLanguageConfig().Default, configureManager.GetLanguageConfig().Languages,
		),
		ConfigureManager: configureManager,
	})

	go func() {
		healthcheck.InitHealthCheck()

		if serveErr := app.Listen(fmt.Sprintf(":%s", configureManager.GetWebConfig().Port)); serveErr != nil {
			logger.Fatalf("connection: web server %v", serveErr)
		}
	}()

	// Wait for gracefully shutdown (Interrupt)
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	<-c

	healthcheck.ServerShutdown()
	if shutdownErr := app.Shutdown(); shutdownErr != nil {
		logger.Error(shutdownErr)
	}
}
