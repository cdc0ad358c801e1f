package http

import (
	"errors"
	"net/http"

	"mortgage-strategy/domain"
	"mortgage-strategy/logger"
	"mortgage-strategy/service"
)

const sessionIDHeader = "X-Session-ID"

type SimulationHandler struct {
	service *service.SimulationService
}

func NewSimulationHandler(service *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{service: service}
}

// Simulate runs all strategies for the posted config. The LOC debug trace
// is only returned with ?debug=true.
func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var cfg domain.SimulationConfig
	if !decodeJSONRequest(w, r, &cfg) {
		return
	}

	result, ok := h.run(w, r, cfg)
	if !ok {
		return
	}

	if r.URL.Query().Get("debug") != "true" {
		result.Accelerated.DebugTrace = nil
	}

	writeJSON(w, r, result)
}

// run executes a simulation and writes the error response on failure.
func (h *SimulationHandler) run(w http.ResponseWriter, r *http.Request, cfg domain.SimulationConfig) (domain.SimulationResult, bool) {
	result, err := h.service.Run(r.Context(), r.Header.Get(sessionIDHeader), cfg)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTerm) || errors.Is(err, service.ErrTermTooLong) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return result, false
		}
		logger.FromContext(r.Context()).Errorw("simulation failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return result, false
	}
	return result, true
}
