package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Config describes the configuration for the logger.
type Config struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string
	// Formatter is one of "text", "json".
	Formatter string
	// OutputFile, if set, appends logs to the given file instead of stderr.
	OutputFile string
	// DisableTimestamp drops the timestamp field from log entries.
	DisableTimestamp bool
}

// DefaultConfig returns a Config instance with default values.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Formatter: "text",
	}
}

// Configure configures the logging level, format, and output path.
func Configure(conf Config) {
	SetLevel(conf.Level)

	switch conf.Formatter {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{
			DisableTimestamp: conf.DisableTimestamp,
		})

	// Default to text
	default:
		logrus.SetFormatter(&textFormatter{
			DisableTimestamp: conf.DisableTimestamp,
			FullTimestamp:    true,
		})
	}

	if conf.OutputFile != "" {
		logFile, err := os.OpenFile(
			conf.OutputFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666,
		)
		if err != nil {
			Error("Can't open log output", "output", conf.OutputFile)
		} else {
			logrus.SetOutput(logFile)
		}
	}
}
