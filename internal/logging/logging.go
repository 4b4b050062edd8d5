// Package logging builds the zap logger shared by the CLI and its
// controllers, mirroring the teacher's zap.NewDevelopment-with-Nop-fallback
// pattern and tagging every session with a random request-scoped ID.
package logging

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a development-formatted zap logger at the given level. An
// unrecognized level falls back to info. If the underlying zap
// construction fails, a no-op logger is returned instead of an error,
// matching the LSP server's fallback behavior: a broken logger must never
// stop the translator from running.
func New(level string) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func parseLevel(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// WithSession returns a child logger tagged with a fresh random session
// ID, so every line emitted during one CLI invocation can be correlated.
func WithSession(logger *zap.Logger) *zap.Logger {
	return logger.With(zap.String("session_id", uuid.NewString()))
}
