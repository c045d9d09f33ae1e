package logger

import (
	"go.uber.org/zap"
)

// LoggerConfig holds logger construction options.
type LoggerConfig struct {
	// Debug enables development-mode output with debug-level logging.
	Debug bool
}

// NewLogger creates a zap logger. Debug mode uses the human-readable
// development encoder at debug level; otherwise the JSON production encoder
// at info level.
func NewLogger(cfg *LoggerConfig) (*zap.Logger, error) {
	if cfg != nil && cfg.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
