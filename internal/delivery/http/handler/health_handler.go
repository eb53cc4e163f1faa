package handler

import (
	"context"
	"net/http"
	"time"

	"mdent-api/internal/lifecycle"
	"mdent-api/pkg/response"
)

// StorePinger is the trivial round-trip used by the readiness probe.
// *sql.DB satisfies it.
type StorePinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	state  *lifecycle.State
	pinger StorePinger
}

func NewHealthHandler(state *lifecycle.State, pinger StorePinger) *HealthHandler {
	return &HealthHandler{
		state:  state,
		pinger: pinger,
	}
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"name": "M Dent API", "status": "ok"})
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// Ready succeeds only while the process is in the ready phase and the store
// answers a round-trip. It starts failing as soon as draining begins.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.state.Ready() {
		response.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "db_down"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.pinger.PingContext(ctx); err != nil {
		response.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "db_down"})
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
