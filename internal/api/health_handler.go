package api

import (
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/taskwell/tasks-api/internal/api/shared"
)

// HealthResponse is the liveness payload served on GET /health.
type HealthResponse struct {
	Status        string       `json:"status"`
	Service       string       `json:"service"`
	Version       string       `json:"version"`
	Timestamp     int64        `json:"timestamp"`
	UptimeSeconds int64        `json:"uptime_seconds"`
	System        SystemStatus `json:"system"`
}

// SystemStatus carries basic process and platform information.
type SystemStatus struct {
	OS       string `json:"os"`
	Arch     string `json:"arch"`
	Hostname string `json:"hostname"`
	PID      int    `json:"pid"`
}

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	service   string
	version   string
	startedAt time.Time
	logger    *slog.Logger
}

// NewHealthHandler creates a HealthHandler. Uptime is measured from the
// moment of construction.
func NewHealthHandler(service, version string, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for HealthHandler")
	}

	return &HealthHandler{
		service:   service,
		version:   version,
		startedAt: time.Now(),
		logger:    logger.With(slog.String("component", "health_handler")),
	}
}

// Health handles GET /health requests.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	now := time.Now()
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:        "healthy",
		Service:       h.service,
		Version:       h.version,
		Timestamp:     now.Unix(),
		UptimeSeconds: int64(now.Sub(h.startedAt).Seconds()),
		System: SystemStatus{
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			Hostname: hostname,
			PID:      os.Getpid(),
		},
	})
}
