package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashflow-engine/internal/handlers/v1/balances"
	"github.com/carson-networks/cashflow-engine/internal/handlers/v1/projections"
	"github.com/carson-networks/cashflow-engine/internal/handlers/v1/status"
	"github.com/carson-networks/cashflow-engine/internal/logging"
	"github.com/carson-networks/cashflow-engine/internal/service"
)

type Rest struct {
	Logger       *logrus.Logger
	Port         string
	BaseCurrency string
	Service      *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("cashflow-engine", "1.0.0"))
	humaAPI.UseMiddleware(r.requestLogging)
	balances.NewMonthBalancesHandler(r.Service.Balance, r.BaseCurrency).Register(humaAPI)
	balances.NewDayBalancesHandler(r.Service.Balance, r.BaseCurrency).Register(humaAPI)
	projections.NewUpcomingHandler(r.Service.Projection).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	r.serve(&server)
}

// requestLogging gives every operation its own LogData accumulator and emits
// one structured entry per request once the handler returns.
func (r *Rest) requestLogging(ctx huma.Context, next func(huma.Context)) {
	logData := logging.NewLogData(r.Logger)
	logData.AddData("path", ctx.URL().Path)

	endTimer := logData.AddTiming("duration")
	next(huma.WithContext(ctx, logging.WithLogData(ctx.Context(), logData)))
	endTimer()

	logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
}

func (r *Rest) serve(server *http.Server) {
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
