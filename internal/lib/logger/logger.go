package logger

import (
	"log/slog"

	"mug-store/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// New returns the slog front used across the app and the zap logger behind it,
// which gin middlewares need directly. Call Sync on the zap logger before exit.
func New(env string) (*slog.Logger, *zap.Logger) {
	var zapLogger *zap.Logger

	switch env {
	case config.EnvProd:
		zapLogger = zap.Must(zap.NewProduction())
	default:
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapLogger = zap.Must(cfg.Build())
	}

	return slog.New(zapslog.NewHandler(zapLogger.Core())), zapLogger
}

// Discard is for tests.
func Discard() (*slog.Logger, *zap.Logger) {
	nop := zap.NewNop()
	return slog.New(zapslog.NewHandler(nop.Core())), nop
}
