package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger creates the shared JSON logger. Level comes from LOG_LEVEL,
// defaulting to info.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
