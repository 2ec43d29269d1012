package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// dbPinger is satisfied by *pgxpool.Pool.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	version string
	log     *slog.Logger
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, version: version, log: logger.With("handler", "health")}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of a single dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if _, err := h.ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports every dependency with its latency, plus the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: make(map[string]CompStatus, 1),
	}
	status := http.StatusOK

	latency, err := h.ping(r.Context())
	if err != nil {
		resp.Status = "down"
		resp.Components["database"] = CompStatus{Status: "down"}
		status = http.StatusServiceUnavailable
	} else {
		resp.Components["database"] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	resp.Timestamp = time.Now()
	writeJSON(w, status, resp)
}

func (h *HealthHandler) ping(ctx context.Context) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		h.log.WarnContext(ctx, "database ping failed", slog.String("error", err.Error()))
		return 0, err
	}
	return time.Since(start), nil
}
