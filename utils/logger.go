package utils

import (
	"github.com/edaniels/golog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewFileDebugLogger is intended as a debug only tool & should not be used in prod.
// It logs at debug level to the given filepath, in plain console encoding so the
// output stays readable without a terminal.
func NewFileDebugLogger(filepath, name string) (golog.Logger, error) {
	logger, err := zap.Config{
		Level:    zap.NewAtomicLevelAt(zap.DebugLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{filepath},
		ErrorOutputPaths:  []string{filepath, "stderr"},
	}.Build()
	if err != nil {
		return nil, err
	}

	return logger.Sugar().Named(name), nil
}
