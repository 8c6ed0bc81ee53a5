package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSize    = 10 // megabytes
	logFileMaxBackups = 3
	logFileMaxAge     = 28 // days
)

// newLogger logs human-readable lines to console at the given level and, if
// filePath is set, JSON lines to a rotating file at the same level.  The
// returned closer releases the log file and must be called after the last
// Sync; it is a no-op when there is no file.
func newLogger(console io.Writer, level string, filePath string) (*zap.Logger, io.Closer, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	consoleConfig := zap.NewDevelopmentEncoderConfig()
	consoleConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleConfig), zapcore.AddSync(console), lvl),
	}

	var closer io.Closer = nopCloser{}
	if filePath != "" {
		rotator := &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    logFileMaxSize,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAge,
			Compress:   false,
		}
		closer = rotator
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(rotator), lvl))
	}

	return zap.New(zapcore.NewTee(cores...)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
