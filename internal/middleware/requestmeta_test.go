package middleware_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/serroba/clickledger/internal/handlers"
	"github.com/serroba/clickledger/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingResponse struct {
	Body struct {
		RequestID string `json:"requestId"`
		ClientIP  string `json:"clientIp"`
		UserAgent string `json:"userAgent"`
	}
}

func newMetaAPI(t *testing.T) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	api.UseMiddleware(middleware.RequestMeta(func() string { return "generated-id" }))

	huma.Get(api, "/ping", func(ctx context.Context, _ *struct{}) (*pingResponse, error) {
		meta := handlers.RequestMetaFromContext(ctx)

		resp := &pingResponse{}
		resp.Body.RequestID = meta.RequestID
		resp.Body.ClientIP = meta.ClientIP
		resp.Body.UserAgent = meta.UserAgent

		return resp, nil
	})

	return api
}

func TestRequestMeta(t *testing.T) {
	t.Run("generates request id when absent", func(t *testing.T) {
		api := newMetaAPI(t)

		resp := api.Get("/ping")

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "generated-id", resp.Header().Get(middleware.HeaderRequestID))
		assert.Contains(t, resp.Body.String(), `"requestId":"generated-id"`)
	})

	t.Run("echoes incoming request id", func(t *testing.T) {
		api := newMetaAPI(t)

		resp := api.Get("/ping", "X-Request-ID: abc-123")

		assert.Equal(t, "abc-123", resp.Header().Get(middleware.HeaderRequestID))
		assert.Contains(t, resp.Body.String(), `"requestId":"abc-123"`)
	})

	t.Run("uses first X-Forwarded-For entry", func(t *testing.T) {
		api := newMetaAPI(t)

		resp := api.Get("/ping", "X-Forwarded-For: 203.0.113.7, 10.0.0.1")

		assert.Contains(t, resp.Body.String(), `"clientIp":"203.0.113.7"`)
	})

	t.Run("falls back to X-Real-IP", func(t *testing.T) {
		api := newMetaAPI(t)

		resp := api.Get("/ping", "X-Real-IP: 198.51.100.2")

		assert.Contains(t, resp.Body.String(), `"clientIp":"198.51.100.2"`)
	})

	t.Run("uses remote address without port", func(t *testing.T) {
		api := newMetaAPI(t)

		resp := api.Get("/ping", "User-Agent: TestAgent/1.0")

		assert.Contains(t, resp.Body.String(), `"clientIp":"192.0.2.1"`)
		assert.Contains(t, resp.Body.String(), `"userAgent":"TestAgent/1.0"`)
	})
}
