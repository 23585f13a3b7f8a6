package shortener_test

import (
	"context"
	"errors"
	"sync"

	"github.com/serroba/clickledger/internal/eventlog"
	"github.com/serroba/clickledger/internal/shortener"
)

var errMock = errors.New("mock error")

// recordingEvents captures emitted events and can be told to fail.
type recordingEvents struct {
	mu     sync.Mutex
	events []eventlog.Event
	err    error
}

func (r *recordingEvents) Log(_ context.Context, e eventlog.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)

	return r.err
}

func (r *recordingEvents) last() eventlog.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.events[len(r.events)-1]
}

type recordingRecorder struct {
	mu       sync.Mutex
	outcomes []string
}

func (r *recordingRecorder) Observe(operation, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.outcomes = append(r.outcomes, operation+":"+outcome)
}

// failingRepo returns configured errors for every call.
type failingRepo struct {
	createErr   error
	findErr     error
	snapshotErr error
	appendErr   error
}

func (f *failingRepo) Create(_ context.Context, _ *shortener.ShortURL) error {
	return f.createErr
}

func (f *failingRepo) Get(_ context.Context, _ shortener.Code) (*shortener.ShortURL, error) {
	return nil, shortener.ErrNotFound
}

func (f *failingRepo) FindBySuffix(_ context.Context, suffix string) (shortener.Code, error) {
	if f.findErr != nil {
		return "", f.findErr
	}

	return shortener.Code("https://example.com/" + suffix), nil
}

func (f *failingRepo) AppendClick(_ context.Context, _ shortener.Code, _ shortener.Click) error {
	return f.appendErr
}

func (f *failingRepo) Clicks(_ context.Context, _ shortener.Code) ([]shortener.Click, error) {
	return []shortener.Click{}, nil
}

func (f *failingRepo) Snapshot(_ context.Context, _ shortener.Code) (*shortener.ShortURL, []shortener.Click, error) {
	return nil, nil, f.snapshotErr
}
