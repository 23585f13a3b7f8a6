package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// DefaultTimeout bounds a single dependency probe.
const DefaultTimeout = 2 * time.Second

// Checker defines the interface for checking service health.
type Checker interface {
	Ping(ctx context.Context) error
}

// Handler handles health check operations.
type Handler struct {
	eventlog Checker
	timeout  time.Duration
}

// NewHandler creates a new health handler probing the event-log sink.
func NewHandler(eventlog Checker) *Handler {
	return &Handler{eventlog: eventlog, timeout: DefaultTimeout}
}

// Response is the response for health check endpoint.
type Response struct {
	Body struct {
		Status   string `example:"ok"      json:"status"`
		EventLog string `example:"healthy" json:"eventlog"`
	}
}

// Check performs a health check of the application and its dependencies.
// An unreachable event-log sink degrades the service but never fails it.
func (h *Handler) Check(ctx context.Context, _ *struct{}) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	resp := &Response{}
	resp.Body.Status = "ok"

	if err := h.eventlog.Ping(ctx); err != nil {
		resp.Body.EventLog = "unhealthy"
		resp.Body.Status = "degraded"
	} else {
		resp.Body.EventLog = "healthy"
	}

	return resp, nil
}

// RegisterRoutes registers health check routes.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Get(api, "/health", h.Check)
}
