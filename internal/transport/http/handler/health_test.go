package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthCheckHealthy(t *testing.T) {
	h := NewHealthHandler(stubPinger{}, stubPinger{}, "1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Check(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "healthy", got.Status)
	assert.Equal(t, "healthy", got.Database)
	assert.Equal(t, "healthy", got.Redis)
	assert.Equal(t, "1.0.0", got.Version)
	assert.GreaterOrEqual(t, got.Uptime, 0.0)
}

func TestHealthCheckDegradedDatabase(t *testing.T) {
	h := NewHealthHandler(stubPinger{err: errors.New("connection refused")}, stubPinger{}, "1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Check(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "degraded", got.Status)
	assert.Equal(t, "unhealthy: connection refused", got.Database)
	assert.Equal(t, "healthy", got.Redis)
}

func TestHealthCheckDegradedCache(t *testing.T) {
	h := NewHealthHandler(stubPinger{}, stubPinger{err: errors.New("timeout")}, "1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Check(rec, req)

	var got HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "degraded", got.Status)
	assert.Equal(t, "unhealthy: timeout", got.Redis)
}

func TestRootHandler(t *testing.T) {
	h := NewRootHandler("Transaction Service", "1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.Root(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Transaction Service", got["message"])
	assert.Equal(t, "running", got["status"])
}
