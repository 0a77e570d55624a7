package log

import (
	"fmt"

	"github.com/3-lines-studio/techpage/internal/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New(mode core.Mode) (*zap.Logger, error) {
	var cfg zap.Config
	if mode == core.ModeDev {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.Named("techpage"), nil
}
