// Package logging builds the logrus logger shared by the authorship commands.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger entry writing to w at the given level. Unknown levels
// fall back to info and unknown formats to text.
func New(level, format string, w io.Writer) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(w)

	if strings.EqualFold(format, FormatJSON) {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger.WithField("service", "authorship")
}
