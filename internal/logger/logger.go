package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/abhisek/balancer/internal/config"
)

// New builds the application logger. The terminal belongs to the UI, so
// output goes to the configured log file instead of stderr.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LoggingDisabled() {
		return zap.NewNop(), nil
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	zc := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}

	return zc.Build()
}
