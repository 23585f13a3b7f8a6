package shortener

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/serroba/clickledger/internal/eventlog"
	"go.uber.org/zap"
)

// Operation names reported to the Recorder.
const (
	OpCreate     = "create"
	OpStatistics = "statistics"
	OpClick      = "click"
)

// Outcome labels reported to the Recorder.
const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Recorder observes operation outcomes, typically for metrics.
type Recorder interface {
	Observe(operation, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) Observe(string, string) {}

// Service creates short URLs, records clicks and assembles statistics.
type Service struct {
	repo     Repository
	clock    clockwork.Clock
	events   eventlog.Logger
	recorder Recorder
	logger   *zap.Logger
}

// NewService wires a Service. A nil recorder disables outcome reporting.
func NewService(
	repo Repository,
	c clockwork.Clock,
	events eventlog.Logger,
	recorder Recorder,
	logger *zap.Logger,
) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &Service{
		repo:     repo,
		clock:    c,
		events:   events,
		recorder: recorder,
		logger:   logger,
	}
}

// CreateShortURL validates the suffix and URL, stores a new record with an
// empty click ledger and returns it. Reusing a code replaces the earlier record.
func (s *Service) CreateShortURL(ctx context.Context, params CreateParams) (*ShortURL, error) {
	shortURL, err := s.create(ctx, params)
	if err != nil {
		s.recorder.Observe(OpCreate, outcomeOf(err))
		s.emit(ctx, eventlog.LevelError, fmt.Sprintf("Failed to create short url: %v", err))

		return nil, err
	}

	s.recorder.Observe(OpCreate, OutcomeSuccess)
	s.emit(ctx, eventlog.LevelInfo, fmt.Sprintf("Short URL created: %s (expires at %s)",
		shortURL.Code, shortURL.ExpiresAt.Format(time.RFC3339)))

	return shortURL, nil
}

func (s *Service) create(ctx context.Context, params CreateParams) (*ShortURL, error) {
	if err := ValidateSuffix(params.Suffix); err != nil {
		return nil, err
	}

	originalURL, err := ValidateURL(params.OriginalURL)
	if err != nil {
		return nil, err
	}

	minutes, err := resolveValidity(params.ValidityMinutes)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	shortURL := &ShortURL{
		Code:        BuildCode(originalURL, params.Suffix),
		OriginalURL: originalURL,
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Duration(minutes) * time.Minute),
	}

	if err = s.repo.Create(ctx, shortURL); err != nil {
		return nil, fmt.Errorf("%w: save short url: %w", ErrInternal, err)
	}

	return shortURL, nil
}

// Statistics resolves code by suffix and returns the record with its full
// click history.
func (s *Service) Statistics(ctx context.Context, code string) (*Statistics, error) {
	stats, err := s.statistics(ctx, code)
	if err != nil {
		s.recorder.Observe(OpStatistics, outcomeOf(err))
		s.emit(ctx, eventlog.LevelError, fmt.Sprintf("Failed to get statistics for %s: %v", code, err))

		return nil, err
	}

	s.recorder.Observe(OpStatistics, OutcomeSuccess)
	s.emit(ctx, eventlog.LevelInfo, fmt.Sprintf("Statistics retrieved for %s (%d clicks, expired: %t)", stats.Code, stats.TotalClicks, stats.Expired))

	return stats, nil
}

func (s *Service) statistics(ctx context.Context, probe string) (*Statistics, error) {
	code, err := s.resolve(ctx, probe)
	if err != nil {
		return nil, err
	}

	shortURL, clicks, err := s.repo.Snapshot(ctx, code)
	if err != nil {
		return nil, s.classify(err, "read statistics")
	}

	return &Statistics{
		Code:        shortURL.Code,
		OriginalURL: shortURL.OriginalURL,
		CreatedAt:   shortURL.CreatedAt,
		ExpiresAt:   shortURL.ExpiresAt,
		Expired:     shortURL.Expired(s.clock.Now()),
		TotalClicks: len(clicks),
		Clicks:      clicks,
	}, nil
}

// RegisterClick resolves code by suffix and appends a click carrying the
// referrer, or UnknownReferrer when none was sent.
func (s *Service) RegisterClick(ctx context.Context, code, referrer string) error {
	resolved, click, err := s.registerClick(ctx, code, referrer)
	if err != nil {
		s.recorder.Observe(OpClick, outcomeOf(err))
		s.emit(ctx, eventlog.LevelError, fmt.Sprintf("Failed to register click for %s: %v", code, err))

		return err
	}

	s.recorder.Observe(OpClick, OutcomeSuccess)
	s.emit(ctx, eventlog.LevelInfo, fmt.Sprintf("Click registered for %s (referrer: %s)", resolved, click.Referrer))

	return nil
}

func (s *Service) registerClick(ctx context.Context, probe, referrer string) (Code, Click, error) {
	code, err := s.resolve(ctx, probe)
	if err != nil {
		return "", Click{}, err
	}

	referrer = strings.TrimSpace(referrer)
	if referrer == "" {
		referrer = UnknownReferrer
	}

	click := Click{
		Timestamp: s.clock.Now(),
		Referrer:  referrer,
		Location:  UnknownLocation,
	}

	if err = s.repo.AppendClick(ctx, code, click); err != nil {
		return "", Click{}, s.classify(err, "append click")
	}

	return code, click, nil
}

func (s *Service) resolve(ctx context.Context, probe string) (Code, error) {
	code, err := s.repo.FindBySuffix(ctx, probe)
	if err != nil {
		return "", s.classify(err, "resolve short code")
	}

	return code, nil
}

func (s *Service) classify(err error, action string) error {
	if errors.Is(err, ErrNotFound) {
		return err
	}

	return fmt.Errorf("%w: %s: %w", ErrInternal, action, err)
}

// emit hands an event to the event log. Failures are reported on the
// application logger and never change the outcome of the operation.
func (s *Service) emit(ctx context.Context, level eventlog.Level, message string) {
	event := eventlog.Backend(level, eventlog.PackageHandler, message)

	if err := s.events.Log(ctx, event); err != nil {
		s.logger.Warn("failed to emit event",
			zap.String("level", string(level)),
			zap.Error(err),
		)
	}
}

func outcomeOf(err error) string {
	switch {
	case IsClientError(err):
		return OutcomeInvalid
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
