package logx

import (
	"sync/atomic"

	"github.com/apex/log"
)

// Logger is the logging surface the module depends on.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

type holder struct {
	l Logger
}

var defaultLogger atomic.Pointer[holder]

func init() {
	defaultLogger.Store(&holder{l: log.Log})
}

// Default returns the logger currently installed.
func Default() Logger {
	return defaultLogger.Load().l
}

// SetDefault installs l as the default logger. A nil l installs Discard.
func SetDefault(l Logger) {
	if l == nil {
		l = Discard
	}
	defaultLogger.Store(&holder{l: l})
}

// Discard is a Logger that drops every message.
var Discard Logger = discard{}

type discard struct{}

func (discard) Debugf(format string, v ...interface{}) {}

func (discard) Infof(format string, v ...interface{}) {}

func (discard) Warnf(format string, v ...interface{}) {}

func (discard) Errorf(format string, v ...interface{}) {}
