package peg

import (
	"io"

	"github.com/sirupsen/logrus"
)

// discardLogger is used whenever a Grammar has no logger configured via
// WithLogger, so call sites never have to nil-check g.log.
var discardLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
