package handlers_test

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"
	"github.com/serroba/clickledger/internal/eventlog"
	"github.com/serroba/clickledger/internal/handlers"
	"github.com/serroba/clickledger/internal/shortener"
	"github.com/serroba/clickledger/internal/store"
	"go.uber.org/zap"
)

var errMock = errors.New("mock error")

const testURL = "https://example.com"

type discardEvents struct{}

func (discardEvents) Log(_ context.Context, e eventlog.Event) error {
	return e.Validate()
}

func newService() *shortener.Service {
	return shortener.NewService(store.NewMemoryStore(), clockwork.NewRealClock(), discardEvents{}, nil, zap.NewNop())
}

func newTestHandler() *handlers.URLHandler {
	return handlers.NewURLHandler(newService(), zap.NewNop())
}

// failingService fails every call with err.
type failingService struct {
	err error
}

func (f *failingService) CreateShortURL(_ context.Context, _ shortener.CreateParams) (*shortener.ShortURL, error) {
	return nil, f.err
}

func (f *failingService) Statistics(_ context.Context, _ string) (*shortener.Statistics, error) {
	return nil, f.err
}

func (f *failingService) RegisterClick(_ context.Context, _, _ string) error {
	return f.err
}
