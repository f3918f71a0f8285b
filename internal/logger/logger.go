package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/sunhwa-master/internal/config"
)

func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}

// NewFile builds a development logger that writes to path instead of stderr.
// It is used when the terminal is owned by the interactive UI.
func NewFile(cfg *config.Config, path string) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	}
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}
