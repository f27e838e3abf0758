package handler

import (
	"net/http"
	"time"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	started time.Time
}

func NewHealthHandler() *HealthHandler { return &HealthHandler{started: time.Now()} }

func (h *HealthHandler) Check(w http.ResponseWriter, _ *http.Request) {
	writeOK(w, map[string]any{
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}
