// Package stroke defines the Stroke value: the immutable label for one
// chorded steno input.
package stroke

import "strings"

// UndoLabel is the single in-band stroke label that rolls back the last
// accepted stroke. No other label may trigger undo.
const UndoLabel = "*"

// Stroke is an opaque, non-empty label for one chorded input (e.g. "H-L").
// A single Stroke never contains "/"; a dictionary key strings several
// strokes together joined by "/" at a higher layer.
//
// Strokes compare by exact bytes and are safe to use as map keys.
type Stroke struct {
	raw string
}

// New wraps a raw label as a Stroke. It performs no validation; callers
// that need to reject malformed input should check IsValid.
func New(raw string) Stroke {
	return Stroke{raw: raw}
}

// Raw returns the stroke's underlying label.
func (s Stroke) Raw() string {
	return s.raw
}

// IsValid reports whether the stroke has a non-empty label.
func (s Stroke) IsValid() bool {
	return len(s.raw) > 0
}

// IsUndo reports whether this stroke is the designated undo stroke.
func (s Stroke) IsUndo() bool {
	return s.raw == UndoLabel
}

// String implements fmt.Stringer.
func (s Stroke) String() string {
	return s.raw
}

// Key joins a sequence of strokes into the slash-separated form used as a
// dictionary lookup key.
func Key(strokes []Stroke) string {
	if len(strokes) == 0 {
		return ""
	}
	raws := make([]string, len(strokes))
	for i, s := range strokes {
		raws[i] = s.raw
	}
	return strings.Join(raws, "/")
}

// ParseSequence splits a slash-joined stroke key into its component
// strokes. Each segment must be non-empty.
func ParseSequence(key string) ([]Stroke, bool) {
	if key == "" {
		return nil, false
	}
	parts := strings.Split(key, "/")
	strokes := make([]Stroke, len(parts))
	for i, p := range parts {
		if p == "" {
			return nil, false
		}
		strokes[i] = New(p)
	}
	return strokes, true
}
