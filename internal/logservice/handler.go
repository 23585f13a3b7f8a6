// Package logservice exposes an event log store over HTTP so that services
// running elsewhere can append events and read them back.
package logservice

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/serroba/clickledger/internal/eventlog"
	"go.uber.org/zap"
)

// Store is the event log backing the service.
type Store interface {
	eventlog.Logger
	Lines(ctx context.Context) ([]string, error)
}

// Handler handles the log endpoints.
type Handler struct {
	store  Store
	newID  func() string
	logger *zap.Logger
}

// NewHandler creates a log handler assigning uuid v4 identifiers.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{
		store:  store,
		newID:  uuid.NewString,
		logger: logger,
	}
}

func (h *Handler) CreateLog(ctx context.Context, req *CreateLogRequest) (*CreateLogResponse, error) {
	event := eventlog.Event{
		Stack:   eventlog.Stack(req.Body.Stack),
		Level:   eventlog.Level(req.Body.Level),
		Package: eventlog.Package(req.Body.Package),
		Message: req.Body.Message,
	}

	if err := h.store.Log(ctx, event); err != nil {
		if eventlog.IsValidationError(err) {
			return nil, huma.Error400BadRequest(err.Error())
		}

		h.logger.Error("failed to append log", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to append log")
	}

	resp := &CreateLogResponse{}
	resp.Body.LogID = h.newID()
	resp.Body.Message = "log created successfully"

	return resp, nil
}

func (h *Handler) ListLogs(ctx context.Context, _ *struct{}) (*ListLogsResponse, error) {
	lines, err := h.store.Lines(ctx)
	if err != nil {
		h.logger.Error("failed to read logs", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to read logs")
	}

	resp := &ListLogsResponse{}
	resp.Body.Logs = lines

	return resp, nil
}
