package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

// initLogger configures the process-wide logrus logger: JSON output, level
// from LOG_LEVEL (default info).
func initLogger() {
	logrus.SetOutput(os.Stdout)
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
}
