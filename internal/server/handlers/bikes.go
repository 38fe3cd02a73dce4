package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/patinfly/internal/models"
	"github.com/iudanet/patinfly/pkg/api"
)

// BikeSource источник велосипедов для ответов сервера
//
//go:generate moq -out bikesource_mock.go . BikeSource
type BikeSource interface {
	GetAll() []*models.Bike
	ByCategory(category string) []*models.Bike
	Get(id string) *models.Bike
}

// BikeHandler обрабатывает запросы к велосипедам
type BikeHandler struct {
	bikes  BikeSource
	logger *slog.Logger
}

func NewBikeHandler(bikes BikeSource, logger *slog.Logger) *BikeHandler {
	return &BikeHandler{
		bikes:  bikes,
		logger: logger,
	}
}

// List обрабатывает GET /bikes.
// Необязательный параметр category фильтрует по имени типа без учета регистра.
func (h *BikeHandler) List(w http.ResponseWriter, r *http.Request) {
	var bikes []*models.Bike
	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		bikes = h.bikes.ByCategory(category)
	} else {
		bikes = h.bikes.GetAll()
	}

	resp := make([]api.BikeResponse, 0, len(bikes))
	for _, b := range bikes {
		resp = append(resp, ToBikeResponse(b))
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

// Get обрабатывает GET /bikes/{id}
func (h *BikeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, h.logger, http.StatusBadRequest, "bike id is required")
		return
	}

	bike := h.bikes.Get(id)
	if bike == nil {
		writeError(w, h.logger, http.StatusNotFound, "bike not found")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, ToBikeResponse(bike))
}

// ToBikeResponse переводит модель в формат ответа; тип передается именем категории
func ToBikeResponse(b *models.Bike) api.BikeResponse {
	bikeType := b.BikeType.Name
	if bikeType == "" {
		bikeType = b.BikeType.Type
	}

	return api.BikeResponse{
		ID:                  b.ID,
		Name:                b.Name,
		BikeType:            bikeType,
		CreationDate:        b.CreationDate,
		LastMaintenanceDate: b.LastMaintenanceDate,
		BatteryLevel:        b.BatteryLevel,
		Meters:              b.Meters,
		InMaintenance:       b.InMaintenance,
		IsActive:            b.IsActive,
		IsDeleted:           b.IsDeleted,
		IsRented:            b.IsRented,
	}
}
