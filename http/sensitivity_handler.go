package http

import (
	"errors"
	"net/http"

	"mortgage-strategy/domain"
	"mortgage-strategy/logger"
	"mortgage-strategy/service"
)

type SensitivityHandler struct {
	service *service.SensitivityService
}

func NewSensitivityHandler(service *service.SensitivityService) *SensitivityHandler {
	return &SensitivityHandler{service: service}
}

func (h *SensitivityHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	var req domain.SweepRequest
	if !decodeJSONRequest(w, r, &req) {
		return
	}

	result, err := h.service.Sweep(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSweep) || errors.Is(err, service.ErrUnknownField) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.FromContext(r.Context()).Errorw("sensitivity sweep failed", "field", req.Field, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, result)
}
