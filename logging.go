package bufview

import (
	"os"

	"github.com/sirupsen/logrus"
)

// logger receives bounds failures at debug level. Quiet by default.
var logger logrus.FieldLogger = newDefaultLogger()

// newDefaultLogger routes output to stdout for easier log capture.
func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetLogger replaces the package logger. A nil logger restores the default.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		logger = newDefaultLogger()
		return
	}
	logger = l
}
