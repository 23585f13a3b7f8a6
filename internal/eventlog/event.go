// Package eventlog is the structured event logging facility shared by the
// backend handlers. Events carry a stack, a level, a package and a message;
// every sink validates them against closed vocabularies before appending.
package eventlog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Stack identifies which side of the product emitted an event.
type Stack string

const (
	StackFrontend Stack = "frontend"
	StackBackend  Stack = "backend"
)

// Level is the severity of an event.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

// Package identifies the emitting layer.
type Package string

const (
	PackageCache      Package = "cache"
	PackageController Package = "controller"
	PackageCronJob    Package = "cron_job"
	PackageDB         Package = "db"
	PackageDomain     Package = "domain"
	PackageHandler    Package = "handler"
	PackageRepository Package = "repository"
	PackageRoute      Package = "route"
	PackageService    Package = "service"
)

var (
	ErrInvalidStack   = errors.New("invalid stack value")
	ErrInvalidLevel   = errors.New("invalid level value")
	ErrInvalidPackage = errors.New("invalid package value")
)

var (
	validStacks   = []Stack{StackFrontend, StackBackend}
	validLevels   = []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
	validPackages = []Package{
		PackageCache, PackageController, PackageCronJob, PackageDB, PackageDomain,
		PackageHandler, PackageRepository, PackageRoute, PackageService,
	}
)

// Event is a single structured log entry.
type Event struct {
	Stack   Stack     `json:"stack"`
	Level   Level     `json:"level"`
	Package Package   `json:"package"`
	Message string    `json:"message"`
	Time    time.Time `json:"time,omitzero"`
}

// Validate checks stack, level and package in that order and reports the
// first value outside its vocabulary.
func (e Event) Validate() error {
	if !contains(validStacks, e.Stack) {
		return fmt.Errorf("%w: %q, allowed values are: %s", ErrInvalidStack, e.Stack, join(validStacks))
	}

	if !contains(validLevels, e.Level) {
		return fmt.Errorf("%w: %q, allowed values are: %s", ErrInvalidLevel, e.Level, join(validLevels))
	}

	if !contains(validPackages, e.Package) {
		return fmt.Errorf("%w: %q, allowed values are: %s", ErrInvalidPackage, e.Package, join(validPackages))
	}

	return nil
}

// IsValidationError reports whether err was produced by Event.Validate.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidStack) ||
		errors.Is(err, ErrInvalidLevel) ||
		errors.Is(err, ErrInvalidPackage)
}

// Logger accepts structured events. Implementations must reject invalid
// events with a validation error.
type Logger interface {
	Log(ctx context.Context, event Event) error
}

// Pinger is implemented by sinks that can report their reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Backend builds a backend event for the given level, package and message.
func Backend(level Level, pkg Package, message string) Event {
	return Event{
		Stack:   StackBackend,
		Level:   level,
		Package: pkg,
		Message: message,
	}
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}

	return false
}

func join[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}

	return strings.Join(parts, ", ")
}
