package http

import (
	"net/http"

	"go.uber.org/zap"

	"mortgage-strategy/service"
)

type RouterDeps struct {
	Simulations *service.SimulationService
	Sensitivity *service.SensitivityService
	Limiter     *RateLimiter
	Logger      *zap.SugaredLogger
}

func NewRouter(deps RouterDeps) http.Handler {
	simulationHandler := NewSimulationHandler(deps.Simulations)
	paymentHandler := NewPaymentHandler()
	sensitivityHandler := NewSensitivityHandler(deps.Sensitivity)
	exportHandler := NewExportHandler(simulationHandler)

	routes := map[string]http.HandlerFunc{
		"/mortgage/simulate":    simulationHandler.Simulate,
		"/mortgage/payment":     paymentHandler.CalculatePayment,
		"/mortgage/sensitivity": sensitivityHandler.Sweep,
		"/mortgage/chart.csv":   exportHandler.ChartCSV,
		"/mortgage/debug.csv":   exportHandler.DebugCSV,
	}

	mux := http.NewServeMux()
	for path, handler := range routes {
		mux.Handle(path, RateLimitMiddleware(deps.Limiter, handler))
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return RequestLoggingMiddleware(deps.Logger, mux)
}
