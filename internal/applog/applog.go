// Package applog builds the process-wide zap logger (spec §4.7): warn-level
// to stderr by default so interactive mode never writes into the alt
// screen, or debug-level to a file when --log-file is given.
package applog

import (
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the logger. logFile == "" means "stderr at warn level"; a
// non-empty path switches to file output at debug level, prefixed with a
// fresh session id so concurrent runs' log lines can be told apart.
func New(logFile string) (*zap.SugaredLogger, error) {
	if logFile == "" {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		logger, err := cfg.Build()
		if err != nil {
			return nil, err
		}
		return logger.Sugar(), nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(f),
		zapcore.DebugLevel,
	)
	logger := zap.New(core).With(zap.String("session", uuid.NewString()))
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything, for tests and one-shot
// mode where wiring a real sink isn't worth the noise.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
