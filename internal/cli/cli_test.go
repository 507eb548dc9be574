package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, RunDemo(context.Background(), &out, 8, logger))

	text := out.String()
	assert.Contains(t, text, "E-Bike: Trek FX+ 2 (EB-001)")
	assert.Contains(t, text, "Bob books Alice's E-Bike: rejected (vehicle unavailable)")
	assert.Contains(t, text, "Alice books a second vehicle: rejected (user already has an active rental)")
	assert.Contains(t, text, "Bob returns Alice's E-Bike: rejected (cannot release vehicle booked by another user)")
	assert.Contains(t, text, "Dear Alice, your rental R-1 of E-Bike: FX+ 2 has been completed at 2024-06-01 09:25.")
	assert.Contains(t, text, "Alice redeemed a free ride.")
	assert.Contains(t, text, "Total completed rentals: 8\nLoyalty Points: 0\nVIP: Yes\n")
	assert.Contains(t, text, "Name: Bob\nTotal completed rentals: 0\nLoyalty Points: 0\nVIP: No\nCurrent active rentals: 1\n")
}

func TestDemoCommand(t *testing.T) {
	out, err := runCmd(t, "demo", "--rides", "4", "--server", "http://127.0.0.1:1")
	require.NoError(t, err)

	assert.Contains(t, out, "Total completed rentals: 4\nLoyalty Points: 1\nVIP: No\n")
	assert.NotContains(t, out, "redeemed")
}

func TestRentalBookCommand(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/rentals", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"R-1","user_name":"Alice","vehicle_type":"E-Bike","vehicle_model":"FX+ 2","status":"ACTIVE"}`))
	}))
	defer srv.Close()

	out, err := runCmd(t, "--server", srv.URL, "rental", "book", "--user", "alice", "--vehicle", "ebike")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"user_id": "alice", "vehicle_id": "ebike"}, got)
	assert.Contains(t, out, "R-1")
	assert.Contains(t, out, "E-Bike: FX+ 2 by Alice")
}

func TestRentalReceiptCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/rentals/R-1/receipt", r.URL.Path)
		_, _ = w.Write([]byte("Rental ID: R-1\nUser: Alice\n"))
	}))
	defer srv.Close()

	out, err := runCmd(t, "--server", srv.URL, "rental", "receipt", "R-1")
	require.NoError(t, err)
	assert.Equal(t, "Rental ID: R-1\nUser: Alice\n", out)
}

func TestVehicleListCommand_JSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("available"))
		_, _ = w.Write([]byte(`[{"id":"v-1","type":"Bike","make":"Giant","model":"Escape 3","available":true}]`))
	}))
	defer srv.Close()

	out, err := runCmd(t, "--server", srv.URL, "-o", "json", "vehicle", "list", "--available")
	require.NoError(t, err)

	var vehicles []VehicleResult
	require.NoError(t, json.Unmarshal([]byte(out), &vehicles))
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Escape 3", vehicles[0].Model)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"vehicle unavailable"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Post(context.Background(), "/v1/rentals", map[string]string{}, nil)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "vehicle unavailable (HTTP 409)", apiErr.Error())
}

func TestClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Get(context.Background(), "/health", nil)
	assert.EqualError(t, err, "upstream exploded (HTTP 502)")
}
