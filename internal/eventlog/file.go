package eventlog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
)

// DefaultFilePath is where the log service appends events unless configured otherwise.
const DefaultFilePath = "logs/app.log"

// FileStore appends formatted events to a single file and reads them back.
type FileStore struct {
	mu    sync.Mutex
	path  string
	clock clockwork.Clock
}

// NewFileStore creates a file-backed store, creating the parent directory.
func NewFileStore(path string, c clockwork.Clock) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("eventlog: create log directory: %w", err)
		}
	}

	return &FileStore{path: path, clock: c}, nil
}

// Path returns the file the store writes to.
func (f *FileStore) Path() string {
	return f.path
}

// Log validates the event and appends it as one line.
func (f *FileStore) Log(_ context.Context, event Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	line := FormatLine(stamp(event, f.clock.Now)) + "\n"

	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("eventlog: open log file: %w", err)
	}

	if _, err = file.WriteString(line); err != nil {
		_ = file.Close()

		return fmt.Errorf("eventlog: append log line: %w", err)
	}

	return file.Close()
}

// Lines returns every stored line in append order. A missing file yields no lines.
func (f *FileStore) Lines(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}

		return nil, fmt.Errorf("eventlog: read log file: %w", err)
	}

	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return []string{}, nil
	}

	return strings.Split(content, "\n"), nil
}

// Ping checks that the log directory is still present.
func (f *FileStore) Ping(_ context.Context) error {
	info, err := os.Stat(filepath.Dir(f.path))
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("eventlog: %s is not a directory", filepath.Dir(f.path))
	}

	return nil
}
