// Package translator owns the bounded stroke history and the read-only
// dictionary, and produces the edit command sequence for each accepted
// stroke or undo.
package translator

import (
	"github.com/stenoglyph/steno/internal/steno/command"
	"github.com/stenoglyph/steno/internal/steno/dictionary"
	"github.com/stenoglyph/steno/internal/steno/diff"
	"github.com/stenoglyph/steno/internal/steno/lookup"
	"github.com/stenoglyph/steno/internal/steno/stroke"
)

// DefaultHistoryBound is the hard upper bound on retained strokes.
const DefaultHistoryBound = 100

// Translator holds the growing stroke history for one session and
// renders it against a fixed dictionary.
type Translator struct {
	dict    *dictionary.Dictionary
	history []stroke.Stroke
	bound   int
}

// New builds a Translator over dict, clamping bound to
// DefaultHistoryBound. A bound of 0 or less uses DefaultHistoryBound.
func New(dict *dictionary.Dictionary, bound int) *Translator {
	if bound <= 0 || bound > DefaultHistoryBound {
		bound = DefaultHistoryBound
	}
	return &Translator{dict: dict, bound: bound}
}

// History returns a copy of the current stroke history, oldest first.
func (t *Translator) History() []stroke.Stroke {
	out := make([]stroke.Stroke, len(t.history))
	copy(out, t.history)
	return out
}

// Translate accepts one stroke, appends it to the history (dropping the
// oldest stroke first if already at the bound), and returns the command
// sequence that edits the previously emitted text into the newly
// emitted text.
func (t *Translator) Translate(s stroke.Stroke) []command.Command {
	if len(t.history) >= t.bound && len(t.history) > 0 {
		t.history = t.history[1:]
	}

	oldAtoms := lookup.Translate(t.dict, t.history)
	t.history = append(t.history, s)
	newAtoms := lookup.Translate(t.dict, t.history)

	return diff.Translate(oldAtoms, newAtoms)
}

// Undo pops the most recently accepted stroke, if any, and returns the
// command sequence that edits the text back to its prior state. Calling
// Undo with an empty history is a no-op that returns NoOp.
func (t *Translator) Undo() []command.Command {
	if len(t.history) == 0 {
		return []command.Command{command.NoOp}
	}

	oldAtoms := lookup.Translate(t.dict, t.history)
	t.history = t.history[:len(t.history)-1]
	newAtoms := lookup.Translate(t.dict, t.history)

	return diff.Translate(oldAtoms, newAtoms)
}
