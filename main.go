package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashflow-engine/api"
	"github.com/carson-networks/cashflow-engine/internal/config"
	"github.com/carson-networks/cashflow-engine/internal/logging"
	"github.com/carson-networks/cashflow-engine/internal/service"
	"github.com/carson-networks/cashflow-engine/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("cashflow-engine starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}

	svc := service.NewService(dbStorage, dbStorage, dbStorage, logger)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:       logger,
			Port:         envConfig.HTTPPort,
			BaseCurrency: envConfig.BaseCurrency,
			Service:      svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
