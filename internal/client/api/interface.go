package api

import (
	"context"

	"github.com/iudanet/patinfly/internal/models"
)

//go:generate moq -out clientapi_mock.go . ClientAPI

// ClientAPI операции удаленного сервиса проката, нужные репозиториям
type ClientAPI interface {
	GetStatus(ctx context.Context) models.ServerStatus
	GetBikes(ctx context.Context) []*models.Bike
	GetBike(ctx context.Context, id string) *models.Bike
}

var _ ClientAPI = (*Client)(nil)
