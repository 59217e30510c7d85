package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds a logger. Unknown levels fall back to info, and any format
// other than "json" gives the text formatter.
func New(level, format string, out io.Writer) *logrus.Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if out == nil {
		out = os.Stderr
	}
	l.SetOutput(out)
	return l
}

// FromEnv builds a logger from LOG_LEVEL and LOG_FORMAT
func FromEnv(out io.Writer) *logrus.Logger {
	level, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		level = "info"
	}
	return New(level, os.Getenv("LOG_FORMAT"), out)
}

// Component returns an entry tagged with the component name
func Component(l *logrus.Logger, name string) *logrus.Entry {
	return l.WithField("component", name)
}

// Discard returns an entry that drops everything, for tests and headless tools
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
