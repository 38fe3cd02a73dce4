// Package handlers содержит HTTP обработчики тестового сервера проката.
// Ответы повторяют формат удаленного сервиса, с которым работает клиент.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/patinfly/pkg/api"
)

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	writeJSON(w, logger, status, api.ErrorResponse{Error: message})
}
