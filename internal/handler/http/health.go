package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/rosterly/attendance-backend-go/internal/handler/http/response"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler interface {
	Health(w http.ResponseWriter, r *http.Request)
}

type HealthHandlerImpl struct {
	store   Pinger
	version string
}

func NewHealthHandler(store Pinger, version string) HealthHandler {
	return &HealthHandlerImpl{
		store:   store,
		version: version,
	}
}

// Health implements HealthHandler. Answers 503 when the store does not
// respond, so load balancers can pull the instance.
func (h *HealthHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		slog.Error("Health check store ping failed", "error", err)
		response.ServiceUnavailable(w, "Store unreachable")
		return
	}

	response.Success(w, map[string]string{
		"name":    "attendance-backend",
		"version": h.version,
	})
}
