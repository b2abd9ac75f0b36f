package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/account"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/budget"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/category"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/dashboard"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("finance-tracker", "1.0.0"))
	humaAPI.UseMiddleware(r.logDataMiddleware)

	account.NewCreateAccountHandler(r.Operator).Register(humaAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewUpdateAccountHandler(r.Operator).Register(humaAPI)
	account.NewDeleteAccountHandler(r.Operator).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Operator).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Operator).Register(humaAPI)

	category.NewCreateCategoryHandler(r.Operator).Register(humaAPI)
	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)

	budget.NewCreateBudgetHandler(r.Operator).Register(humaAPI)
	budget.NewListBudgetsHandler(r.Service.Budget).Register(humaAPI)
	budget.NewUpdateBudgetHandler(r.Operator).Register(humaAPI)
	budget.NewDeleteBudgetHandler(r.Operator).Register(humaAPI)
	budget.NewBudgetSummaryHandler(r.Service.Budget).Register(humaAPI)

	dashboard.NewTrendHandler(r.Service.Trend).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
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

// logDataMiddleware attaches a per-request LogData and emits one structured
// line when the operation finishes.
func (r *Rest) logDataMiddleware(ctx huma.Context, next func(huma.Context)) {
	logData := logging.NewLogData(r.Logger)
	logData.AddData("path", ctx.URL().Path)

	endTimer := logData.AddTiming("duration")
	next(huma.WithValue(ctx, logging.LogDataContextKey, logData))
	endTimer()

	name := ctx.Operation().OperationID
	logData.Log().Infof("Handler.%v.Complete", name)
}
