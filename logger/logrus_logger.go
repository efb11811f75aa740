package logger

import (
	log "github.com/sirupsen/logrus"
)

// LogrusLogger forwards to a logrus entry, keeping its fields on every record.
type LogrusLogger struct {
	Entry *log.Entry
}

// NewLogrusLogger returns an ILogger writing through entry. A nil entry uses
// the standard logrus logger.
func NewLogrusLogger(entry *log.Entry) *LogrusLogger {
	if entry == nil {
		entry = log.NewEntry(log.StandardLogger())
	}
	return &LogrusLogger{Entry: entry}
}

// WithField returns a copy carrying an extra field.
func (logger *LogrusLogger) WithField(key string, value interface{}) *LogrusLogger {
	return &LogrusLogger{Entry: logger.Entry.WithField(key, value)}
}

func (logger *LogrusLogger) Trace(format string, args ...interface{}) {
	logger.Entry.Tracef(format, args...)
}

func (logger *LogrusLogger) Debug(format string, args ...interface{}) {
	logger.Entry.Debugf(format, args...)
}

func (logger *LogrusLogger) Info(format string, args ...interface{}) {
	logger.Entry.Infof(format, args...)
}

func (logger *LogrusLogger) Warn(format string, args ...interface{}) {
	logger.Entry.Warnf(format, args...)
}

func (logger *LogrusLogger) Error(format string, args ...interface{}) {
	logger.Entry.Errorf(format, args...)
}
