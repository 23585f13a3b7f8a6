package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/clickledger/internal/shortener"
	"go.uber.org/zap"
)

// Shortener is the service behind the URL handlers.
type Shortener interface {
	CreateShortURL(ctx context.Context, params shortener.CreateParams) (*shortener.ShortURL, error)
	Statistics(ctx context.Context, code string) (*shortener.Statistics, error)
	RegisterClick(ctx context.Context, code, referrer string) error
}

// URLHandler handles URL shortening operations.
type URLHandler struct {
	service Shortener
	logger  *zap.Logger
}

// NewURLHandler creates a new URL handler.
func NewURLHandler(service Shortener, logger *zap.Logger) *URLHandler {
	return &URLHandler{
		service: service,
		logger:  logger,
	}
}

func (h *URLHandler) CreateShortURL(ctx context.Context, req *CreateShortURLRequest) (*CreateShortURLResponse, error) {
	shortURL, err := h.service.CreateShortURL(ctx, shortener.CreateParams{
		OriginalURL:     req.Body.OriginalURL,
		Suffix:          req.Body.Suffix,
		ValidityMinutes: req.Body.ValidateTime,
	})
	if err != nil {
		return nil, h.toHTTPError(ctx, "create short url", err)
	}

	resp := &CreateShortURLResponse{}
	resp.Body.ShortURL = string(shortURL.Code)
	resp.Body.ExpirationTime = shortURL.ExpiresAt

	return resp, nil
}

func (h *URLHandler) GetStatistics(ctx context.Context, req *ShortCodeRequest) (*StatisticsResponse, error) {
	stats, err := h.service.Statistics(ctx, req.ShortCode)
	if err != nil {
		return nil, h.toHTTPError(ctx, "get statistics", err)
	}

	resp := &StatisticsResponse{}
	resp.Body.OriginalURL = stats.OriginalURL
	resp.Body.CreationDate = stats.CreatedAt
	resp.Body.ExpirationDate = stats.ExpiresAt
	resp.Body.TotalClicks = stats.TotalClicks
	resp.Body.ClickDetails = make([]ClickDetail, len(stats.Clicks))

	for i, click := range stats.Clicks {
		resp.Body.ClickDetails[i] = ClickDetail{
			Timestamp: click.Timestamp,
			Referrer:  click.Referrer,
			Location:  click.Location,
		}
	}

	return resp, nil
}

func (h *URLHandler) RegisterClick(ctx context.Context, req *RegisterClickRequest) (*RegisterClickResponse, error) {
	if err := h.service.RegisterClick(ctx, req.ShortCode, req.Referer); err != nil {
		return nil, h.toHTTPError(ctx, "register click", err)
	}

	resp := &RegisterClickResponse{}
	resp.Body.Message = "Click registered successfully"

	return resp, nil
}

func (h *URLHandler) toHTTPError(ctx context.Context, action string, err error) error {
	switch {
	case shortener.IsClientError(err):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, shortener.ErrNotFound):
		return huma.Error404NotFound("Short URL not found")
	default:
		h.logger.Error("request failed",
			zap.String("action", action),
			zap.String("requestId", RequestMetaFromContext(ctx).RequestID),
			zap.Error(err),
		)

		return huma.Error500InternalServerError("An unexpected error occurred: " + err.Error())
	}
}
