// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the command-line tool.
package logging

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLevel names the environment variable consulted for the default level.
const EnvLevel = "LINALG_LOG_LEVEL"

// Level is a textual log level.
type Level string

// Recognized levels. Unknown names fall back to LevelError.
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

func (l Level) String() string {
	return string(l)
}

// Zap maps l (case-insensitive, with common aliases) onto a zap level.
func (l Level) Zap() zap.AtomicLevel {
	switch Level(strings.ToLower(strings.TrimSpace(string(l)))) {
	case LevelDebug, "trace":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case LevelInfo, "information", "notice":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case LevelWarn, "warning":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
}

// New returns a console logger writing to w at level l.
// Timestamps are omitted so output is reproducible.
func New(l Level, w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), l.Zap())

	return zap.New(core)
}
