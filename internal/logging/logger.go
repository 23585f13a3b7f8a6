// Package logging builds the application zap logger.
package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config drives how the zap logger is built.
type Config struct {
	// Format is "json" (production) or "console" (development).
	Format string
	// Level is a zap level name; empty means info.
	Level string
}

// New returns a zap.Logger configured according to cfg.
func New(cfg Config) (*zap.Logger, error) {
	var zapCfg zap.Config

	switch cfg.Format {
	case FormatConsole:
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.Encoding = FormatConsole
	case FormatJSON, "":
		zapCfg = zap.NewProductionConfig()
		zapCfg.Encoding = FormatJSON
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	zapCfg.EncoderConfig = encoderConfig(zapCfg.Encoding, colorize())

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
			return nil, fmt.Errorf("logging: invalid level %q: %w", cfg.Level, err)
		}
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build(zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

func encoderConfig(encoding string, colors bool) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	if encoding == FormatConsole {
		cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
		}
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder

		if colors {
			cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}

		return cfg
	}

	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg
}

func colorize() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
