package handler

import (
	"context"
	"net/http"
	"time"
)

// Pinger reports reachability of a dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service health. Dependency failures are reported as
// data, never propagated as errors.
type HealthHandler struct {
	db      Pinger
	cache   Pinger
	version string
	started time.Time
}

// HealthResponse is the health endpoint's payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Database  string    `json:"database"`
	Redis     string    `json:"redis"`
	Uptime    float64   `json:"uptime"`
}

func NewHealthHandler(db, cache Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, version: version, started: time.Now()}
}

// Check probes the store and cache independently and reports healthy only
// when both respond.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	dbStatus := "healthy"
	if err := h.db.Ping(r.Context()); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	cacheStatus := "healthy"
	if err := h.cache.Ping(r.Context()); err != nil {
		cacheStatus = "unhealthy: " + err.Error()
	}

	overall := "healthy"
	if dbStatus != "healthy" || cacheStatus != "healthy" {
		overall = "degraded"
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    overall,
		Timestamp: time.Now().UTC(),
		Version:   h.version,
		Database:  dbStatus,
		Redis:     cacheStatus,
		Uptime:    time.Since(h.started).Seconds(),
	})
}

// RootHandler serves the service banner.
type RootHandler struct {
	name    string
	version string
}

func NewRootHandler(name, version string) *RootHandler {
	return &RootHandler{name: name, version: version}
}

func (h *RootHandler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": h.name,
		"version": h.version,
		"status":  "running",
	})
}
