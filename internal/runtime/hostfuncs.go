package runtime

import (
	"fmt"
	"io"
)

// logObject is exposed to Risor scripts as a proxy, so scripts call the Go
// method names: log.Info, log.Warn and log.Error.
type logObject struct {
	prefix string
	w      io.Writer
}

func (l *logObject) Info(msg string) {
	fmt.Fprintf(l.w, "[%s] INFO: %s\n", l.prefix, msg)
}

func (l *logObject) Warn(msg string) {
	fmt.Fprintf(l.w, "[%s] WARN: %s\n", l.prefix, msg)
}

func (l *logObject) Error(msg string) {
	fmt.Fprintf(l.w, "[%s] ERROR: %s\n", l.prefix, msg)
}
