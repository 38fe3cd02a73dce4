package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/patinfly/internal/client/api"
	"github.com/iudanet/patinfly/internal/client/fixtures"
	"github.com/iudanet/patinfly/internal/models"
	pkgapi "github.com/iudanet/patinfly/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testStatus() pkgapi.StatusInfo {
	return pkgapi.StatusInfo{Version: "1.0.0", Build: "7", Update: "2024-06-01", Name: "patinfly-test"}
}

func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	logger := testLogger()
	srv, err := New(opts, fixtures.NewBikeStore(fixtures.Assets(), logger), logger)
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// Клиент из internal/client/api должен понимать ответы сервера
func TestServer_WithAPIClient(t *testing.T) {
	ts := newTestServer(t, Options{Status: testStatus()})
	client := api.NewClient(ts.URL, 5*time.Second, testLogger())
	ctx := context.Background()

	status := client.GetStatus(ctx)
	assert.Equal(t, models.ServerStatus{Version: "1.0.0", Build: "7", Update: "2024-06-01", Name: "patinfly-test"}, status)

	bikes := client.GetBikes(ctx)
	require.Len(t, bikes, 5)
	assert.Equal(t, "c9a0a1d2-3b4c-4d5e-8f60-718293a4b5c6", bikes[0].ID)
	assert.Equal(t, "Urban", bikes[0].BikeType.Name)
	assert.Equal(t, "Urban", bikes[0].BikeType.Type)

	bike := client.GetBike(ctx, "f3a4b5c6-d7e8-4f90-b1a2-b3c4d5e6f7a8")
	require.NotNil(t, bike)
	assert.True(t, bike.IsRented)

	assert.Nil(t, client.GetBike(ctx, "does-not-exist"))
}

func TestServer_HealthAndMetrics(t *testing.T) {
	ts := newTestServer(t, Options{Status: testStatus()})

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "1.0.0", health["version"])

	bikesResp, err := http.Get(ts.URL + "/bikes")
	require.NoError(t, err)
	_ = bikesResp.Body.Close()

	metricsResp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = metricsResp.Body.Close() }()
	body, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `patinfly_http_requests_total{method="GET",route="GET /bikes",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestServer_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, Options{Status: testStatus()})

	resp, err := http.Post(ts.URL+"/bikes", "application/json", nil)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServer_RateLimit(t *testing.T) {
	ts := newTestServer(t, Options{Status: testStatus(), RateLimit: 0.001, RateBurst: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := http.Get(ts.URL + "/status")
		require.NoError(t, err)
		_ = resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestServer_RunAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	logger := testLogger()
	srv, err := New(Options{Status: testStatus(), Address: addr, ShutdownTimeout: time.Second},
		fixtures.NewBikeStore(fixtures.Assets(), logger), logger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()

	logger := testLogger()
	srv, err := New(Options{Status: testStatus(), Address: ln.Addr().String()},
		fixtures.NewBikeStore(fixtures.Assets(), logger), logger)
	require.NoError(t, err)

	assert.Error(t, srv.Run(context.Background()))
}
