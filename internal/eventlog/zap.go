package eventlog

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapSink writes events to a zap logger. Fatal events are logged at error
// level; the sink never terminates the process.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a sink backed by logger.
func NewZapSink(logger *zap.Logger) *ZapSink {
	return &ZapSink{logger: logger.Named("eventlog")}
}

func (z *ZapSink) Log(_ context.Context, event Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	fields := []zap.Field{
		zap.String("stack", string(event.Stack)),
		zap.String("package", string(event.Package)),
		zap.String("level", string(event.Level)),
	}

	if !event.Time.IsZero() {
		fields = append(fields, zap.Time("eventTime", event.Time))
	}

	if ce := z.logger.Check(zapLevel(event.Level), event.Message); ce != nil {
		ce.Write(fields...)
	}

	return nil
}

// Ping always succeeds.
func (z *ZapSink) Ping(_ context.Context) error {
	return nil
}

func zapLevel(l Level) zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError, LevelFatal:
		return zapcore.ErrorLevel
	case LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.InfoLevel
	}
}
