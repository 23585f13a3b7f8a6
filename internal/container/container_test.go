package container_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"github.com/samber/do"
	"github.com/serroba/clickledger/internal/container"
	"github.com/serroba/clickledger/internal/logging"
	"github.com/serroba/clickledger/internal/messaging"
	"github.com/serroba/clickledger/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServerInjector(t *testing.T, opts *container.Options) *do.Injector {
	t.Helper()

	injector := do.New()
	do.ProvideValue(injector, opts)
	do.ProvideValue(injector, logging.Config{Format: logging.FormatJSON, Level: "error"})
	container.LoggerPackage(injector)
	container.MetricsPackage(injector)
	container.EventLogPackage(injector)
	container.StorePackage(injector)
	container.ServicePackage(injector)
	container.HTTPPackage(injector)

	t.Cleanup(func() { _ = injector.Shutdown() })

	return injector
}

func defaultOptions(t *testing.T) *container.Options {
	t.Helper()

	return &container.Options{
		Port:            8888,
		EventSink:       container.SinkFile,
		LogFile:         filepath.Join(t.TempDir(), "logs", "app.log"),
		RemoteTimeoutMS: 2000,
		EventBuffer:     16,
	}
}

func serve(t *testing.T, injector *do.Injector, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := do.MustInvoke[*chi.Mux](injector)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestServerWiring(t *testing.T) {
	t.Run("serves shortener routes with request ids and metrics", func(t *testing.T) {
		injector := newServerInjector(t, defaultOptions(t))
		_ = do.MustInvoke[huma.API](injector)

		rec := serve(t, injector, http.MethodPost, "/shorten", `{"original_url":"https://example.com","suffix":"abc123"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))

		rec = serve(t, injector, http.MethodPost, "/click/abc123", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = serve(t, injector, http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"eventlog":"healthy"`)

		rec = serve(t, injector, http.MethodGet, "/metrics", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `clickledger_operations_total{operation="create",outcome="success"} 1`)
		assert.Contains(t, rec.Body.String(), `clickledger_operations_total{operation="click",outcome="success"} 1`)
	})

	t.Run("delivers handler events to the file sink once consumers run", func(t *testing.T) {
		opts := defaultOptions(t)
		injector := newServerInjector(t, opts)
		_ = do.MustInvoke[huma.API](injector)

		group := do.MustInvoke[*messaging.ConsumerGroup](injector)
		require.NoError(t, group.Start(context.Background()))

		rec := serve(t, injector, http.MethodPost, "/shorten", `{"original_url":"https://example.com","suffix":"abc"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Eventually(t, func() bool {
			data, err := os.ReadFile(opts.LogFile)

			return err == nil && strings.Contains(string(data), "[STACK: backend] [LEVEL: INFO] [PACKAGE: handler]")
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("counts events dropped by a full backlog", func(t *testing.T) {
		opts := defaultOptions(t)
		opts.EventBuffer = 1
		injector := newServerInjector(t, opts)
		_ = do.MustInvoke[huma.API](injector)

		for _, suffix := range []string{"one", "two"} {
			rec := serve(t, injector, http.MethodPost, "/shorten", `{"original_url":"https://example.com","suffix":"`+suffix+`"}`)
			require.Equal(t, http.StatusOK, rec.Code)
		}

		rec := serve(t, injector, http.MethodGet, "/metrics", "")
		assert.Contains(t, rec.Body.String(), "clickledger_eventlog_dropped_total 1")
	})

	t.Run("mistyped body fields are a 400", func(t *testing.T) {
		injector := newServerInjector(t, defaultOptions(t))
		_ = do.MustInvoke[huma.API](injector)

		rec := serve(t, injector, http.MethodPost, "/shorten", `{"original_url":"https://example.com","suffix":123}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects unknown event sink", func(t *testing.T) {
		opts := defaultOptions(t)
		opts.EventSink = "kafka"
		injector := newServerInjector(t, opts)

		_, err := do.Invoke[container.Sink](injector)

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown event sink "kafka"`)
	})

	t.Run("builds zap and remote sinks", func(t *testing.T) {
		for _, sink := range []string{container.SinkZap, container.SinkRemote} {
			opts := defaultOptions(t)
			opts.EventSink = sink
			injector := newServerInjector(t, opts)

			got, err := do.Invoke[container.Sink](injector)

			require.NoError(t, err, sink)
			assert.NotNil(t, got)
		}
	})
}

func TestLogServerWiring(t *testing.T) {
	opts := &container.LogServerOptions{
		Port:    8889,
		LogFile: filepath.Join(t.TempDir(), "app.log"),
	}

	injector := do.New()
	do.ProvideValue(injector, opts)
	do.ProvideValue(injector, opts.Logging())
	container.LoggerPackage(injector)
	container.LogServerPackage(injector)

	t.Cleanup(func() { _ = injector.Shutdown() })

	_ = do.MustInvoke[huma.API](injector)

	rec := serve(t, injector, http.MethodPost, "/log", `{"stack":"backend","level":"info","package":"db","message":"connected"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "log created successfully")

	rec = serve(t, injector, http.MethodGet, "/log", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "MESSAGE: connected")

	rec = serve(t, injector, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptions(t *testing.T) {
	opts := &container.Options{LogFormat: "console", LogLevel: "debug", RemoteTimeoutMS: 1500}

	assert.Equal(t, logging.Config{Format: "console", Level: "debug"}, opts.Logging())
	assert.Equal(t, 1500*time.Millisecond, opts.RemoteTimeout())
}
