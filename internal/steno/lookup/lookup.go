// Package lookup implements the greedy longest-match translation of a
// stroke history against a dictionary, with single-stroke suffix folding
// when no direct mapping exists.
package lookup

import (
	"strings"

	"github.com/stenoglyph/steno/internal/steno/dictionary"
	"github.com/stenoglyph/steno/internal/steno/stroke"
)

// LMax bounds how many strokes a single dictionary lookup window may span.
const LMax = 10

// centerKeys are the steno keys that mark the centre of a chord; the first
// one present in a stroke's raw label separates its left-hand consonants
// from its right-hand/suffix keys for folding purposes.
const centerKeys = "*-AOEU"

// suffixes are the foldable suffix letters, tried in this order. Each one
// corresponds to a dictionary entry under its own dash-prefixed label
// (e.g. "-Z") that supplies the atoms to glue onto the folded base match.
var suffixes = []string{"-Z", "-D", "-S", "-G"}

// Translate walks history and returns the flat atom sequence the
// dictionary produces for it, applying greedy longest-match. Suffix
// folding is the fallback only for the final stroke of history; any
// earlier stroke with no match becomes an UnknownStroke atom.
func Translate(dict *dictionary.Dictionary, history []stroke.Stroke) []dictionary.Atom {
	var out []dictionary.Atom

	i := 0
	for i < len(history) {
		j := i + LMax - 1
		if j > len(history)-1 {
			j = len(history) - 1
		}

		matched := false
		for k := j; k >= i; k-- {
			if atoms, ok := dict.Lookup(history[i : k+1]); ok {
				out = append(out, atoms...)
				i = k + 1
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		if i == j {
			if atoms, ok := tryFold(dict, history[i]); ok {
				out = append(out, atoms...)
				i++
				continue
			}
		}

		out = append(out, dictionary.NewUnknownStroke(history[i].Raw()))
		i++
	}

	return out
}

// tryFold attempts suffix folding on a single stroke with no direct
// mapping: it locates the centre of the chord, then for each candidate
// suffix letter occurring after the centre, strips its last occurrence
// and checks whether both the residue and the suffix label exist in the
// dictionary.
func tryFold(dict *dictionary.Dictionary, s stroke.Stroke) ([]dictionary.Atom, bool) {
	raw := s.Raw()

	centerIdx := strings.IndexAny(raw, centerKeys)
	if centerIdx < 0 {
		return nil, false
	}

	for _, suf := range suffixes {
		letter := suf[len(suf)-1:]
		tail := raw[centerIdx:]
		pos := strings.LastIndex(tail, letter)
		if pos < 0 {
			continue
		}

		residue := raw[:centerIdx] + tail[:pos] + tail[pos+1:]
		residue = strings.TrimPrefix(residue, "-")
		if residue == "" {
			continue
		}

		baseAtoms, ok := dict.Lookup([]stroke.Stroke{stroke.New(residue)})
		if !ok {
			continue
		}
		sufAtoms, ok := dict.Lookup([]stroke.Stroke{stroke.New(suf)})
		if !ok {
			continue
		}

		combined := make([]dictionary.Atom, 0, len(baseAtoms)+len(sufAtoms))
		combined = append(combined, baseAtoms...)
		combined = append(combined, sufAtoms...)
		return combined, true
	}

	return nil, false
}
