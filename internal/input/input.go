// Package input defines the interface a steno machine, real or simulated,
// implements to feed strokes to the translator.
package input

import (
	"context"

	"github.com/stenoglyph/steno/internal/steno/stroke"
)

// Source streams strokes one at a time. Next blocks until a stroke is
// available, the source is exhausted (ok == false, err == nil), or ctx is
// canceled.
type Source interface {
	Next(ctx context.Context) (stroke.Stroke, bool, error)
}
