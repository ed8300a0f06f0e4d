// Package logging provides internal logging facilities for huectl
package logging

import (
	"sync"

	"github.com/rs/zerolog"
)

var globalMutex sync.Mutex
var globalLogger *zerolog.Logger
var localLoggers = make(map[string]*zerolog.Logger)

// Init configures the global logger and distributes it to all component
// loggers registered so far. It should be called once during startup.
func Init(global *zerolog.Logger) {
	globalMutex.Lock()
	defer globalMutex.Unlock()

	if globalLogger != nil {
		panic("logging.Init: Already called")
	}

	globalLogger = global
	for name, logger := range localLoggers {
		writeLogger(name, logger)
	}
}

func writeLogger(name string, logger *zerolog.Logger) {
	*logger = globalLogger.With().Str("component", name).Logger()
}

// ComponentLogger registers logger to be a logger for the given component.
// Until Init is called the logger stays a no-op.
func ComponentLogger(component string, logger *zerolog.Logger) {
	globalMutex.Lock()
	defer globalMutex.Unlock()

	if globalLogger == nil {
		*logger = zerolog.Nop()
		localLoggers[component] = logger
		return
	}

	writeLogger(component, logger)
}
