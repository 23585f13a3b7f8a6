package eventlog

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the layout of the timestamp prefix of a log line.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// FormatLine renders an event as a single log line without the trailing newline.
//
//	[2025-01-02T03:04:05.000000] [STACK: backend] [LEVEL: INFO] [PACKAGE: handler] MESSAGE: short url created
func FormatLine(e Event) string {
	return fmt.Sprintf("[%s] [STACK: %s] [LEVEL: %s] [PACKAGE: %s] MESSAGE: %s",
		e.Time.Format(TimestampLayout),
		e.Stack,
		strings.ToUpper(string(e.Level)),
		e.Package,
		lineBreaks.Replace(e.Message),
	)
}

// One event per line, so GET /log can split on newlines.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func stamp(e Event, now func() time.Time) Event {
	if e.Time.IsZero() {
		e.Time = now()
	}

	return e
}
