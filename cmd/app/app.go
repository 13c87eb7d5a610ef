package main

import (
	"os"

	"github.com/shopsmart/storefront-backend/internal/app"
	config "github.com/shopsmart/storefront-backend/internal/cfg"
	"github.com/shopsmart/storefront-backend/pkg/logger"
)

//	@title			ShopSmart Storefront API
//	@version		1.0
//	@description	Мультиарендный сервис витрин: магазины, каталоги и передача заказов в WhatsApp.
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
