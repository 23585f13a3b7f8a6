package middleware

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/clickledger/internal/handlers"
	"go.uber.org/zap"
)

// AccessLog logs one line per request once the handler has written its status.
// It must run after RequestMeta to pick up the request id.
func AccessLog(logger *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		started := time.Now()

		next(ctx)

		meta := handlers.RequestMetaFromContext(ctx.Context())
		status := ctx.Status()

		fields := []zap.Field{
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.URL().Path),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(started)),
			zap.String("requestId", meta.RequestID),
			zap.String("clientIp", meta.ClientIP),
		}

		switch {
		case status >= 500:
			logger.Error("request completed", fields...)
		case status >= 400:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}
