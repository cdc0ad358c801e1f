package http

import (
	"bytes"
	"net/http"

	"mortgage-strategy/domain"
	"mortgage-strategy/logger"
	"mortgage-strategy/report"
)

// ExportHandler serves simulation output as CSV downloads.
type ExportHandler struct {
	simulations *SimulationHandler
}

func NewExportHandler(simulations *SimulationHandler) *ExportHandler {
	return &ExportHandler{simulations: simulations}
}

func (h *ExportHandler) ChartCSV(w http.ResponseWriter, r *http.Request) {
	var cfg domain.SimulationConfig
	if !decodeJSONRequest(w, r, &cfg) {
		return
	}

	result, ok := h.simulations.run(w, r, cfg)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteChartCSV(&buf, result.ChartData); err != nil {
		logger.FromContext(r.Context()).Errorw("chart export failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if sessionID := r.Header.Get(sessionIDHeader); sessionID != "" {
		h.simulations.service.TrackChartInteraction(r.Context(), sessionID, "csv_export")
	}

	writeCSV(w, r, "mortgage-chart.csv", &buf)
}

func (h *ExportHandler) DebugCSV(w http.ResponseWriter, r *http.Request) {
	var cfg domain.SimulationConfig
	if !decodeJSONRequest(w, r, &cfg) {
		return
	}

	result, ok := h.simulations.run(w, r, cfg)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteDebugCSV(&buf, result.Accelerated.DebugTrace); err != nil {
		logger.FromContext(r.Context()).Errorw("debug export failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeCSV(w, r, "loc-debug-trace.csv", &buf)
}
