package dictionary

import (
	"testing"

	"github.com/stenoglyph/steno/internal/steno/stroke"
)

func mustStrokes(t *testing.T, key string) []stroke.Stroke {
	t.Helper()
	strokes, ok := stroke.ParseSequence(key)
	if !ok {
		t.Fatalf("invalid stroke key %q", key)
	}
	return strokes
}
