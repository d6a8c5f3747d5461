package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a logger from zc that writes to w instead of the paths
// named in zc, so logs follow the command's error stream.
func newLogger(zc zap.Config, w io.Writer) *zap.Logger {
	var enc zapcore.Encoder
	if zc.Encoding == "console" {
		enc = zapcore.NewConsoleEncoder(zc.EncoderConfig)
	} else {
		enc = zapcore.NewJSONEncoder(zc.EncoderConfig)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zc.Level)

	opts := []zap.Option{zap.ErrorOutput(zapcore.AddSync(w))}
	if zc.Development {
		opts = append(opts, zap.Development(), zap.AddCaller())
	}
	return zap.New(core, opts...)
}
