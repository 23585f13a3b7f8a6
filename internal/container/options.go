package container

import (
	"time"

	"github.com/serroba/clickledger/internal/logging"
)

// Event sinks selectable with --event-sink.
const (
	SinkZap    = "zap"
	SinkFile   = "file"
	SinkRemote = "remote"
)

// Options configures the URL shortener server.
type Options struct {
	Port            int    `default:"8888"                  help:"Port to listen on"                                short:"p"`
	LogFormat       string `default:"json"                  help:"Log format: json or console"`
	LogLevel        string `default:"info"                  help:"Log level: debug, info, warn or error"`
	EventSink       string `default:"zap"                   help:"Where handler events go: zap, file or remote"     short:"s"`
	LogFile         string `default:"logs/app.log"          help:"Log file used by the file event sink"`
	LogServiceURL   string `default:"http://localhost:8889" help:"Log service base URL used by the remote event sink"`
	RemoteTimeoutMS int    `default:"2000"                  help:"Remote event sink timeout in milliseconds"`
	EventBuffer     int    `default:"1024"                  help:"Events that may await delivery before new ones are dropped"`
}

// Logging returns the logger configuration.
func (o *Options) Logging() logging.Config {
	return logging.Config{Format: o.LogFormat, Level: o.LogLevel}
}

// RemoteTimeout returns the remote sink timeout.
func (o *Options) RemoteTimeout() time.Duration {
	return time.Duration(o.RemoteTimeoutMS) * time.Millisecond
}

// LogServerOptions configures the log service.
type LogServerOptions struct {
	Port      int    `default:"8889"         help:"Port to listen on"                    short:"p"`
	LogFormat string `default:"json"         help:"Log format: json or console"`
	LogLevel  string `default:"info"         help:"Log level: debug, info, warn or error"`
	LogFile   string `default:"logs/app.log" help:"File the events are appended to"      short:"f"`
}

// Logging returns the logger configuration.
func (o *LogServerOptions) Logging() logging.Config {
	return logging.Config{Format: o.LogFormat, Level: o.LogLevel}
}
