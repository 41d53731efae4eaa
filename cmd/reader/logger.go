// cmd/reader/logger.go
package main

import (
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/modbus-reader/internal/config"
)

func setupLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	}
	return logger
}

// frameLogger bridges goburrow's *log.Logger frame trace into logrus at
// debug level. It is nil unless debug logging is on.
func frameLogger(logger *logrus.Logger) (*log.Logger, func()) {
	if !logger.IsLevelEnabled(logrus.DebugLevel) {
		return nil, func() {}
	}
	w := logger.WriterLevel(logrus.DebugLevel)
	return log.New(w, "modbus: ", 0), func() { _ = w.Close() }
}
