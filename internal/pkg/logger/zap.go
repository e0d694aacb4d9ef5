// Package logger configures the process-wide zap logger.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Initialize builds a production zap logger at the given level and installs
// it as the global logger, so call sites use zap.L().
func Initialize(level string) error {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	config.Level = atomicLevel

	log, err := config.Build()
	if err != nil {
		return fmt.Errorf("building zap logger: %w", err)
	}

	zap.ReplaceGlobals(log)
	return nil
}
