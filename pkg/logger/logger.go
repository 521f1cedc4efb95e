package logger

import (
	"go.uber.org/zap"
)

// New builds the process-wide structured logger.
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
