package logger

import (
	"os"
	"sync"

	log "github.com/sirupsen/logrus"
)

// ILogger is the logging surface used by functions.
type ILogger interface {
	Trace(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

var setupOnce sync.Once

// Setup configures the process-wide logrus logger. Only the first call has
// any effect; later calls are ignored so it is safe to call from init paths.
func Setup(level string) {
	setupOnce.Do(func() {
		// The lambda runtime stamps every line itself.
		log.SetFormatter(&log.TextFormatter{
			DisableTimestamp: true,
		})
		log.SetOutput(os.Stderr)

		lvl, err := log.ParseLevel(level)
		if err != nil {
			log.SetLevel(log.InfoLevel)
			log.WithError(err).Warnf("Unknown log level %q, falling back to info", level)
			return
		}
		log.SetLevel(lvl)
	})
}
