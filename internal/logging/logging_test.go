package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevelRecognized(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseLevelUnrecognizedFallsBackToInfo(t *testing.T) {
	if got := parseLevel("not-a-level"); got != zapcore.InfoLevel {
		t.Fatalf("got %v want info", got)
	}
}

func TestNewNeverReturnsNil(t *testing.T) {
	logger := New("debug")
	if logger == nil {
		t.Fatalf("New returned nil")
	}
}

func TestWithSessionAddsDistinctIDs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)
	a := WithSession(base)
	b := WithSession(base)
	if a == b {
		t.Fatalf("expected two distinct logger instances")
	}
	a.Info("a")
	b.Info("b")
	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries want 2", len(entries))
	}
	idA, okA := entries[0].ContextMap()["session_id"].(string)
	idB, okB := entries[1].ContextMap()["session_id"].(string)
	if !okA || !okB || idA == "" || idA == idB {
		t.Fatalf("expected two distinct non-empty session IDs, got %q and %q", idA, idB)
	}
}
