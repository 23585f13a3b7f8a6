// Package container wires the application services with samber/do.
// Each XxxPackage function registers lazy providers; nothing is built until
// it is invoked.
package container

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jaevor/go-nanoid"
	"github.com/samber/do"
	"github.com/jonboulle/clockwork"
	"github.com/serroba/clickledger/internal/eventlog"
	"github.com/serroba/clickledger/internal/handlers"
	"github.com/serroba/clickledger/internal/health"
	"github.com/serroba/clickledger/internal/logging"
	"github.com/serroba/clickledger/internal/logservice"
	"github.com/serroba/clickledger/internal/messaging"
	"github.com/serroba/clickledger/internal/metrics"
	"github.com/serroba/clickledger/internal/middleware"
	"github.com/serroba/clickledger/internal/shortener"
	"github.com/serroba/clickledger/internal/store"
	"go.uber.org/zap"
)

const requestIDLength = 21

// Sink is an event log destination that can also report its health.
type Sink interface {
	eventlog.Logger
	eventlog.Pinger
}

// LoggerPackage provides the zap logger from a logging.Config value and
// the real clock.
func LoggerPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*zap.Logger, error) {
		return logging.New(do.MustInvoke[logging.Config](i))
	})

	do.Provide(i, func(_ *do.Injector) (clockwork.Clock, error) {
		return clockwork.NewRealClock(), nil
	})
}

// MetricsPackage provides the Prometheus collectors.
func MetricsPackage(i *do.Injector) {
	do.Provide(i, func(_ *do.Injector) (*metrics.Metrics, error) {
		return metrics.New(), nil
	})
}

// EventLogPackage provides the configured sink and the asynchronous
// dispatcher the shortener logs through.
func EventLogPackage(i *do.Injector) {
	do.Provide(i, newSink)

	do.Provide(i, func(i *do.Injector) (*gochannel.GoChannel, error) {
		opts := do.MustInvoke[*Options](i)
		logger := do.MustInvoke[*zap.Logger](i)

		return messaging.NewInProcess(int64(opts.EventBuffer), logging.NewWatermillAdapter(logger)), nil
	})

	do.Provide(i, func(i *do.Injector) (*eventlog.Backlog, error) {
		return eventlog.NewBacklog(do.MustInvoke[*Options](i).EventBuffer), nil
	})

	do.Provide(i, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		return messaging.NewPublisherGroup(do.MustInvoke[*gochannel.GoChannel](i)), nil
	})

	do.Provide(i, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		pubsub := do.MustInvoke[*gochannel.GoChannel](i)
		sink := do.MustInvoke[Sink](i)
		logger := do.MustInvoke[*zap.Logger](i)
		m := do.MustInvoke[*metrics.Metrics](i)

		group := messaging.NewConsumerGroup(pubsub, logger)
		group.Add(messaging.NewConsumer(
			pubsub,
			eventlog.TopicEvents,
			eventlog.NewDeliveryHandler(sink, do.MustInvoke[*eventlog.Backlog](i), logger, m.EventsDropped()),
			logger,
		))

		return group, nil
	})

	do.Provide(i, func(i *do.Injector) (eventlog.Logger, error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)
		publish := messaging.NewPublishFunc[eventlog.Event](group.Publisher(), eventlog.TopicEvents)

		return eventlog.NewDispatcher(
			publish,
			do.MustInvoke[clockwork.Clock](i),
			do.MustInvoke[*eventlog.Backlog](i),
			do.MustInvoke[*metrics.Metrics](i).EventsDropped(),
		), nil
	})
}

func newSink(i *do.Injector) (Sink, error) {
	opts := do.MustInvoke[*Options](i)

	switch opts.EventSink {
	case SinkZap:
		return eventlog.NewZapSink(do.MustInvoke[*zap.Logger](i)), nil
	case SinkFile:
		return eventlog.NewFileStore(opts.LogFile, do.MustInvoke[clockwork.Clock](i))
	case SinkRemote:
		return eventlog.NewRemoteSink(opts.LogServiceURL, opts.RemoteTimeout()), nil
	default:
		return nil, fmt.Errorf("unknown event sink %q", opts.EventSink)
	}
}

// StorePackage provides the in-memory registry and click ledger.
func StorePackage(i *do.Injector) {
	do.Provide(i, func(_ *do.Injector) (*store.MemoryStore, error) {
		return store.NewMemoryStore(), nil
	})
}

// ServicePackage provides the shortening service.
func ServicePackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*shortener.Service, error) {
		return shortener.NewService(
			do.MustInvoke[*store.MemoryStore](i),
			do.MustInvoke[clockwork.Clock](i),
			do.MustInvoke[eventlog.Logger](i),
			do.MustInvoke[*metrics.Metrics](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
}

// HTTPPackage provides the router and the shortener API. Invoking huma.API
// registers every route.
func HTTPPackage(i *do.Injector) {
	do.Provide(i, newRouter)

	do.Provide(i, func(i *do.Injector) (huma.API, error) {
		router := do.MustInvoke[*chi.Mux](i)
		logger := do.MustInvoke[*zap.Logger](i)
		m := do.MustInvoke[*metrics.Metrics](i)

		api, err := newAPI(router, "Click Ledger", logger)
		if err != nil {
			return nil, err
		}

		urlHandler := handlers.NewURLHandler(do.MustInvoke[*shortener.Service](i), logger)
		handlers.RegisterRoutes(api, urlHandler)
		health.RegisterRoutes(api, health.NewHandler(do.MustInvoke[Sink](i)))

		router.Handle("/metrics", m.Handler())

		return api, nil
	})
}

// LogServerPackage provides the log service: a file store and its API.
func LogServerPackage(i *do.Injector) {
	do.Provide(i, func(i *do.Injector) (*eventlog.FileStore, error) {
		opts := do.MustInvoke[*LogServerOptions](i)

		return eventlog.NewFileStore(opts.LogFile, do.MustInvoke[clockwork.Clock](i))
	})

	do.Provide(i, newRouter)

	do.Provide(i, func(i *do.Injector) (huma.API, error) {
		router := do.MustInvoke[*chi.Mux](i)
		logger := do.MustInvoke[*zap.Logger](i)
		fileStore := do.MustInvoke[*eventlog.FileStore](i)

		api, err := newAPI(router, "Log Service", logger)
		if err != nil {
			return nil, err
		}

		logservice.RegisterRoutes(api, logservice.NewHandler(fileStore, logger))
		health.RegisterRoutes(api, health.NewHandler(fileStore))

		return api, nil
	})
}

func newRouter(_ *do.Injector) (*chi.Mux, error) {
	router := chi.NewMux()
	router.Use(chimiddleware.Recoverer)

	return router, nil
}

func newAPI(router *chi.Mux, title string, logger *zap.Logger) (huma.API, error) {
	newID, err := nanoid.Standard(requestIDLength)
	if err != nil {
		return nil, err
	}

	handlers.UseBadRequestForValidation()

	api := humachi.New(router, huma.DefaultConfig(title, "1.0.0"))
	api.UseMiddleware(
		middleware.RequestMeta(newID),
		middleware.AccessLog(logger.Named("http")),
	)

	return api, nil
}
