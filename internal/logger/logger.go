// Package logger holds the process-wide logger.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures Log from the environment. Call it once from main.
//
// LOG_LEVEL picks the level (default "info"); LOG_FORMAT=json switches to
// the JSON formatter, anything else keeps text with full timestamps.
func Init() {
	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	// stdout carries the rendered map, so logs go to stderr.
	Log.SetOutput(os.Stderr)
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
