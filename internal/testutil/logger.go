package testutil

import (
	"io"

	"github.com/dtroode/staffhub-server/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 0, nil)
}
