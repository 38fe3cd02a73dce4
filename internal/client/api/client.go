package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/patinfly/internal/models"
	"github.com/iudanet/patinfly/pkg/api"
)

// DefaultTimeout таймаут HTTP клиента по умолчанию
const DefaultTimeout = 30 * time.Second

// ErrNotFound сервер ответил 404
var ErrNotFound = errors.New("resource not found")

// Client представляет HTTP клиент для взаимодействия с сервером проката.
// Ошибки сети и сервера не возвращаются вызывающему: вместо них
// пустой результат или статус-заглушка, а причина пишется в лог.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// NewClient создает новый API клиент; timeout <= 0 означает DefaultTimeout
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: baseURL,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// GetStatus запрашивает GET /status.
// При любой ошибке возвращает models.ErrorStatus().
func (c *Client) GetStatus(ctx context.Context) models.ServerStatus {
	var resp api.StatusResponse
	if err := c.doRequest(ctx, http.MethodGet, "/status", &resp); err != nil {
		c.logger.Warn("status request failed", slog.Any("error", err))
		return models.ErrorStatus()
	}

	return models.ServerStatus{
		Version: resp.Status.Version,
		Build:   resp.Status.Build,
		Update:  resp.Status.Update,
		Name:    resp.Status.Name,
	}
}

// GetBikes запрашивает GET /bikes. При ошибке возвращает пустой список.
func (c *Client) GetBikes(ctx context.Context) []*models.Bike {
	var resp []api.BikeResponse
	if err := c.doRequest(ctx, http.MethodGet, "/bikes", &resp); err != nil {
		c.logger.Warn("bikes request failed", slog.Any("error", err))
		return []*models.Bike{}
	}

	bikes := make([]*models.Bike, 0, len(resp))
	for _, b := range resp {
		bikes = append(bikes, toBike(b))
	}
	return bikes
}

// GetBike запрашивает GET /bikes/{id}. 404 и ошибки дают nil.
func (c *Client) GetBike(ctx context.Context, id string) *models.Bike {
	var resp api.BikeResponse
	err := c.doRequest(ctx, http.MethodGet, "/bikes/"+url.PathEscape(id), &resp)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.logger.Debug("bike not found on server", slog.String("id", id))
		} else {
			c.logger.Warn("bike request failed", slog.String("id", id), slog.Any("error", err))
		}
		return nil
	}

	return toBike(resp)
}

// toBike переводит ответ сервера в модель; строковый тип становится и именем, и кодом
func toBike(b api.BikeResponse) *models.Bike {
	return &models.Bike{
		ID:                  b.ID,
		Name:                b.Name,
		BikeType:            models.BikeType{UUID: "", Name: b.BikeType, Type: b.BikeType},
		CreationDate:        b.CreationDate,
		LastMaintenanceDate: b.LastMaintenanceDate,
		InMaintenance:       b.InMaintenance,
		IsActive:            b.IsActive,
		IsDeleted:           b.IsDeleted,
		BatteryLevel:        b.BatteryLevel,
		Meters:              b.Meters,
		IsRented:            b.IsRented,
	}
}

// doRequest выполняет HTTP запрос без тела и декодирует JSON ответ в result
func (c *Client) doRequest(ctx context.Context, method, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
