// Package logutil carries small logging helpers shared across packages.
package logutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Discard returns a logger that drops everything. Used as the default so
// callers that never configure logging pay nothing and nil checks stay out
// of the hot paths.
func Discard() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}
