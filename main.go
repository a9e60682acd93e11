package main

import (
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/vendo-server/api"
	"github.com/carson-networks/vendo-server/internal/catalog"
	"github.com/carson-networks/vendo-server/internal/config"
	"github.com/carson-networks/vendo-server/internal/logging"
	"github.com/carson-networks/vendo-server/internal/operator"
	"github.com/carson-networks/vendo-server/internal/service"
	"github.com/carson-networks/vendo-server/internal/storage"
	"github.com/carson-networks/vendo-server/internal/storage/transaction"
	"github.com/carson-networks/vendo-server/internal/vending"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("vendo-server starting")

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

	regular := catalog.SeedRegular()
	special := catalog.SeedSpecial()
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		logger.Debugf("seeded catalogs:\n%s%s", spew.Sdump(regular.Items()), spew.Sdump(special.Items()))
	}

	ledger := vending.NewLedger(envConfig.MachineBalance, envConfig.StartingBalance)
	recorder := transaction.NewRecorder(dbStorage.Transactions)
	machine := vending.NewMachine(regular, special, ledger, recorder)

	delegator := operator.NewOperatorDelegator(machine)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Operator: delegator,
			Service:  svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
