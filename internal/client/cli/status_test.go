package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/patinfly/internal/client/auth"
	"github.com/iudanet/patinfly/internal/client/rental"
	"github.com/iudanet/patinfly/internal/models"
)

func TestCli_runStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   models.ServerStatus
		contains []string
		excludes []string
	}{
		{
			name:     "server available",
			status:   models.ServerStatus{Name: "patinfly", Version: "1.2", Build: "42", Update: "2024-05-01"},
			contains: []string{"Name:    patinfly", "Version: 1.2", "Build:   42"},
			excludes: []string{"unreachable"},
		},
		{
			name:     "server unavailable",
			status:   models.ErrorStatus(),
			contains: []string{"Status:  unavailable", "unreachable"},
			excludes: []string{"Version:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			mockRental := &rental.ServiceMock{
				ServerStatusFunc: func(ctx context.Context) models.ServerStatus {
					return tt.status
				},
			}
			cli := New(newTestIO(&out), &auth.ServiceMock{}, mockRental, Options{})

			require.NoError(t, cli.Run(context.Background(), "status", nil))
			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}
