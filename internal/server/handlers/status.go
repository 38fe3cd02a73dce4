package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/patinfly/pkg/api"
)

// StatusHandler отдает информацию о версии сервера
type StatusHandler struct {
	logger *slog.Logger
	info   api.StatusInfo
}

func NewStatusHandler(info api.StatusInfo, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{
		logger: logger,
		info:   info,
	}
}

// Status обрабатывает GET /status
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, api.StatusResponse{Status: h.info})
}
