package main

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-tracker starting")

	// Missing .env is fine, variables may come from the environment itself.
	_ = godotenv.Load()

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

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.NumWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.Port,
			Service:  svc,
			Operator: delegator,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
