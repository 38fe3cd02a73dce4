package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/patinfly/internal/client/auth"
	"github.com/iudanet/patinfly/internal/client/iocli"
	"github.com/iudanet/patinfly/internal/client/rental"
	"github.com/iudanet/patinfly/internal/models"
)

// newTestIO собирает весь вывод в buf
func newTestIO(buf *bytes.Buffer) *iocli.IOMock {
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			fmt.Fprintln(buf, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(buf, format, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			return buf.Write(p)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			return "", errors.New("unexpected input")
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			return "", errors.New("unexpected password prompt")
		},
	}
}

func testBike() *models.Bike {
	maintenance := "2024-02-01T10:30:00"
	return &models.Bike{
		ID:                  "c9a0a1d2-3b4c-4d5e-8f60-718293a4b5c6",
		Name:                "Patinfly Urban 01",
		BikeType:            models.BikeType{Name: "Urban", Type: "URBAN"},
		CreationDate:        "2023-03-14T09:00:00",
		LastMaintenanceDate: &maintenance,
		BatteryLevel:        87,
		Meters:              15230,
		IsActive:            true,
	}
}

func TestGetPassword_FromEnvVar(t *testing.T) {
	cli := &Cli{io: newTestIO(&bytes.Buffer{})}
	t.Setenv(PasswordEnv, "env_password")

	password, err := cli.getPassword(Passwords{FromArgs: "args_password"})
	require.NoError(t, err)
	assert.Equal(t, "env_password", password)
}

func TestGetPassword_FromFile(t *testing.T) {
	cli := &Cli{io: newTestIO(&bytes.Buffer{})}
	t.Setenv(PasswordEnv, "")

	path := filepath.Join(t.TempDir(), "password.txt")
	require.NoError(t, os.WriteFile(path, []byte("file_password\n"), 0o600))

	password, err := cli.getPassword(Passwords{FromFile: path, FromArgs: "args_password"})
	require.NoError(t, err)
	assert.Equal(t, "file_password", password)
}

func TestGetPassword_FileErrors(t *testing.T) {
	cli := &Cli{io: newTestIO(&bytes.Buffer{})}
	t.Setenv(PasswordEnv, "")

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0o600))

	_, err := cli.getPassword(Passwords{FromFile: empty})
	assert.ErrorContains(t, err, "password file is empty")

	_, err = cli.getPassword(Passwords{FromFile: filepath.Join(t.TempDir(), "missing.txt")})
	assert.ErrorContains(t, err, "failed to read password file")
}

func TestGetPassword_FromArgs(t *testing.T) {
	cli := &Cli{io: newTestIO(&bytes.Buffer{})}
	t.Setenv(PasswordEnv, "")

	password, err := cli.getPassword(Passwords{FromArgs: "args_password"})
	require.NoError(t, err)
	assert.Equal(t, "args_password", password)
}

func TestGetPassword_Prompt(t *testing.T) {
	t.Setenv(PasswordEnv, "")
	mockIO := newTestIO(&bytes.Buffer{})
	mockIO.ReadPasswordFunc = func(prompt string) (string, error) {
		return "typed", nil
	}
	cli := &Cli{io: mockIO}

	password, err := cli.getPassword(Passwords{})
	require.NoError(t, err)
	assert.Equal(t, "typed", password)
	require.Len(t, mockIO.ReadPasswordCalls(), 1)
	assert.Equal(t, "Password: ", mockIO.ReadPasswordCalls()[0].Prompt)

	mockIO.ReadPasswordFunc = func(prompt string) (string, error) { return "", nil }
	_, err = cli.getPassword(Passwords{})
	assert.ErrorContains(t, err, "password cannot be empty")
}

func TestCli_Run_UnknownCommand(t *testing.T) {
	var out bytes.Buffer
	cli := New(newTestIO(&out), &auth.ServiceMock{}, &rental.ServiceMock{}, Options{})

	err := cli.Run(context.Background(), "fly", nil)
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, out.String(), "Usage:")
}

func TestCli_Run_Help(t *testing.T) {
	var out bytes.Buffer
	cli := New(newTestIO(&out), &auth.ServiceMock{}, &rental.ServiceMock{}, Options{})

	require.NoError(t, cli.Run(context.Background(), "help", nil))
	assert.Contains(t, out.String(), "PATINFLY_PASSWORD")
}

func TestCli_Run_Version(t *testing.T) {
	var out bytes.Buffer
	cli := New(newTestIO(&out), &auth.ServiceMock{}, &rental.ServiceMock{}, Options{
		Build: BuildInfo{Version: "1.0.0", Date: "2024-06-01", Commit: "abc123"},
	})

	require.NoError(t, cli.Run(context.Background(), "version", nil))
	assert.Equal(t, "patinfly 1.0.0 (built 2024-06-01, commit abc123)\n", out.String())
}

func TestRender_AllTemplates(t *testing.T) {
	plan := &models.SystemPricingPlan{Version: "3.0", Data: models.DataPlan{Plans: []models.Plan{{PlanID: "basic"}}}}
	data := map[string]any{
		"bike":    testBike(),
		"bikes":   []*models.Bike{testBike()},
		"status":  models.ErrorStatus(),
		"profile": &rental.Profile{User: &models.User{Name: "Laia"}},
		"plan":    planView{Plan: plan, Lang: "en"},
		"version": BuildInfo{},
		"usage":   nil,
	}

	for name, v := range data {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render(&buf, name, v))
			assert.NotEmpty(t, buf.String())
		})
	}

	assert.Error(t, render(&bytes.Buffer{}, "missing", nil))
}
