// Package logging builds the process-wide logrus logger.
package logging

import (
	"os"
	"strings"

	"hermesoftware/byklab-api/internal/config"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to stderr with the configured level and
// format. An unknown level falls back to info.
func New(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
