package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/serroba/clickledger/internal/shortener"
)

// MemoryStore is an in-memory shortener.Repository. The registry, its
// insertion order and the click ledger share one lock, so a record is never
// visible without its ledger.
type MemoryStore struct {
	mu     sync.RWMutex
	urls   map[shortener.Code]*shortener.ShortURL
	order  []shortener.Code // first-insertion order of urls
	clicks map[shortener.Code][]shortener.Click
}

// NewMemoryStore creates a new in-memory URL store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		urls:   make(map[shortener.Code]*shortener.ShortURL),
		clicks: make(map[shortener.Code][]shortener.Click),
	}
}

// Create stores the record and resets its ledger to empty.
func (m *MemoryStore) Create(_ context.Context, shortURL *shortener.ShortURL) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.put(shortURL)
	m.clicks[shortURL.Code] = []shortener.Click{}

	return nil
}

func (m *MemoryStore) put(shortURL *shortener.ShortURL) {
	if _, ok := m.urls[shortURL.Code]; !ok {
		m.order = append(m.order, shortURL.Code)
	}

	stored := *shortURL
	m.urls[shortURL.Code] = &stored
}

func (m *MemoryStore) Get(_ context.Context, code shortener.Code) (*shortener.ShortURL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shortURL, ok := m.urls[code]
	if !ok {
		return nil, shortener.ErrNotFound
	}

	found := *shortURL

	return &found, nil
}

// FindBySuffix scans codes in insertion order and returns the first one
// ending with suffix.
func (m *MemoryStore) FindBySuffix(_ context.Context, suffix string) (shortener.Code, error) {
	if suffix == "" {
		return "", shortener.ErrNotFound
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, code := range m.order {
		if strings.HasSuffix(string(code), suffix) {
			return code, nil
		}
	}

	return "", shortener.ErrNotFound
}

func (m *MemoryStore) AppendClick(_ context.Context, code shortener.Code, click shortener.Click) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ledger, ok := m.clicks[code]
	if !ok {
		return nil
	}

	m.clicks[code] = append(ledger, click)

	return nil
}

func (m *MemoryStore) Clicks(_ context.Context, code shortener.Code) ([]shortener.Click, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return cloneClicks(m.clicks[code]), nil
}

func (m *MemoryStore) Snapshot(_ context.Context, code shortener.Code) (*shortener.ShortURL, []shortener.Click, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shortURL, ok := m.urls[code]
	if !ok {
		return nil, nil, shortener.ErrNotFound
	}

	found := *shortURL

	return &found, cloneClicks(m.clicks[code]), nil
}

func cloneClicks(clicks []shortener.Click) []shortener.Click {
	if clicks == nil {
		return []shortener.Click{}
	}

	return slices.Clone(clicks)
}

// Compile-time check.
var _ shortener.Repository = (*MemoryStore)(nil)
