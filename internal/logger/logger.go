// Package logger builds the process wide zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level       string
	Filename    string
	Development bool
	MaxSize     int // megabytes
	MaxAge      int // days
	MaxBackups  int
}

// New returns a sugared logger writing to stdout and, when Filename is set, to a rotated
// JSON file as well.
func New(cfg Config) (*zap.SugaredLogger, error) {
	level := new(zapcore.Level)
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, err
		}
	}

	core := zapcore.NewCore(encoder(false), zapcore.AddSync(os.Stdout), level)
	if cfg.Filename != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    orDefault(cfg.MaxSize, 100),
			MaxAge:     orDefault(cfg.MaxAge, 14),
			MaxBackups: orDefault(cfg.MaxBackups, 5),
		}
		core = zapcore.NewTee(core, zapcore.NewCore(encoder(true), zapcore.AddSync(file), level))
	}

	opts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zap.DPanicLevel)}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}
	return zap.New(core, opts...).Sugar(), nil
}

// Nop is a logger that discards everything, for tests.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func encoder(json bool) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	ec.EncodeDuration = zapcore.StringDurationEncoder
	if json {
		return zapcore.NewJSONEncoder(ec)
	}
	return zapcore.NewConsoleEncoder(ec)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
