package internal

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	noOnce   sync.Once
	noLogger *logrus.Logger
)

// NoopLogger возвращает logrus.Logger, отбрасывающий все записи.
func NoopLogger() logrus.FieldLogger {
	noOnce.Do(func() {
		noLogger = logrus.New()
		noLogger.SetOutput(io.Discard)
		noLogger.SetLevel(logrus.PanicLevel)
	})
	return noLogger
}

// EnsureLogger возвращает l, если он задан, иначе - NoopLogger.
func EnsureLogger(l logrus.FieldLogger) logrus.FieldLogger {
	if l != nil {
		return l
	}
	return NoopLogger()
}
