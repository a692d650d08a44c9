package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/clearspend/expense-server/api"
	"github.com/clearspend/expense-server/internal/config"
	"github.com/clearspend/expense-server/internal/logging"
	"github.com/clearspend/expense-server/internal/operator"
	"github.com/clearspend/expense-server/internal/service"
	"github.com/clearspend/expense-server/internal/snapshot"
	"github.com/clearspend/expense-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("expense-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.MutationWorkers)
	delegator.Start()
	defer delegator.Stop()

	snapshots := snapshot.New()
	svc := service.NewService(dbStorage, delegator, snapshots, envConfig.SessionTTL)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
