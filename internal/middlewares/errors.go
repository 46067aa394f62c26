package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-health-tracker/internal/logger"
)

const internalErrorMessage = "Internal server error"

// writeInternalError answers with the JSON error body the handlers use for 500s.
// A Location header set by the wrapped handler is dropped.
func writeInternalError(w http.ResponseWriter) {
	w.Header().Del("Location")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": internalErrorMessage}); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}
