package report

import (
	"io"

	"github.com/sirupsen/logrus"
)

func nullLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logger
}
