package http

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"mortgage-strategy/logger"
)

const maxBodyBytes = 1 << 20

// decodeJSONRequest checks method and content type and decodes the body
// into v. It writes the error response itself and reports whether the
// handler should go on.
func decodeJSONRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return false
	}

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		logger.FromContext(r.Context()).Debugw("invalid request body", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}

	return true
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half written 200 behind.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	log := logger.FromContext(r.Context())

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Errorw("error encoding response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Warnw("error writing response", "error", err)
	}
}

func writeCSV(w http.ResponseWriter, r *http.Request, filename string, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromContext(r.Context()).Warnw("error writing csv", "error", err)
	}
}
