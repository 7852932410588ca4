package cpu

import "log"

// Logger is the minimal logging surface the core uses. *log.Logger
// satisfies it directly.
type Logger interface {
	Printf(format string, args ...interface{})
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...interface{}) {}

var _ Logger = (*log.Logger)(nil)
