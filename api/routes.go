package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/vendo-server/internal/handlers/v1/item"
	"github.com/carson-networks/vendo-server/internal/handlers/v1/machine"
	"github.com/carson-networks/vendo-server/internal/handlers/v1/maintenance"
	"github.com/carson-networks/vendo-server/internal/handlers/v1/status"
	"github.com/carson-networks/vendo-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/vendo-server/internal/logging"
	"github.com/carson-networks/vendo-server/internal/operator"
	"github.com/carson-networks/vendo-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Operator *operator.OperatorDelegator
	Service  *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()
	humaConfig := huma.DefaultConfig("vendo-server", "1.0.0")
	humaAPI := humago.New(mux, humaConfig)

	machine.NewGetMachineHandler(r.Operator).Register(humaAPI)
	machine.NewInsertCoinsHandler(r.Operator).Register(humaAPI)
	machine.NewPurchaseItemHandler(r.Operator).Register(humaAPI)
	machine.NewPurchaseSpecialItemHandler(r.Operator).Register(humaAPI)
	item.NewListItemsHandler(r.Operator).Register(humaAPI)
	maintenance.NewRestockItemHandler(r.Operator).Register(humaAPI)
	maintenance.NewSetItemPriceHandler(r.Operator).Register(humaAPI)
	maintenance.NewRestockAllHandler(r.Operator).Register(humaAPI)
	maintenance.NewCollectPaymentHandler(r.Operator).Register(humaAPI)
	maintenance.NewReplenishMoneyHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           logging.Middleware(r.Logger, mux),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
