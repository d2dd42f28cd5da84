package codegen

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/tvm-codegen/codegen/internal/engine"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the codegen package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the logger of codegen and its module writer.
// This must be called before any generation.
func SetLogger(l *zap.Logger) {
	logger = l
	engine.SetLogger(l)
}
