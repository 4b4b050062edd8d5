// Package format reduces a dictionary atom sequence to a canonical
// rendered string under the spacing/case algebra: consecutive text
// actions coalesce, attached-word runs flatten through the orthography
// engine, and a three-element look-around emission pass decides spacing
// and capitalisation for every word.
package format

import (
	"regexp"
	"unicode/utf8"

	"github.com/stenoglyph/steno/internal/steno/dictionary"
	"github.com/stenoglyph/steno/internal/steno/orthography"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	numberTranslationRegex = regexp.MustCompile(`^[0-9\-]+$`)
	numbersOnlyRegex       = regexp.MustCompile(`^[0-9]+$`)
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// kind tags the normalised intermediate stream produced by merge.
type kind int

const (
	kindLit kind = iota
	kindGlued
	kindUnknown
	kindActions
)

// unit is one element of the normalised stream: a word, a glued
// fragment, an unknown-stroke label, or a coalesced action set.
type unit struct {
	kind    kind
	text    string
	actions dictionary.ActionSet
}

// ExtractCommands splits a trailing run of command atoms off the end of
// an atom sequence, returning the text atoms to render and the commands
// to forward to the diff engine's command fast path.
func ExtractCommands(atoms []dictionary.Atom) (text []dictionary.Atom, cmds []dictionary.Atom) {
	end := len(atoms)
	for end > 0 && atoms[end-1].Kind == dictionary.CommandAtom {
		end--
	}
	return atoms[:end], atoms[end:]
}

// Render normalises and renders a text-atom sequence into its canonical
// string form, including the leading separator space that prefixes the
// first emitted word.
func Render(atoms []dictionary.Atom) string {
	units := merge(atoms)

	var result string

	// pad with two trailing empties so every unit gets a turn as "cur"
	stream := make([]*unit, 0, len(units)+2)
	for i := range units {
		stream = append(stream, &units[i])
	}
	stream = append(stream, nil, nil)

	var prev, cur, next *unit
	for _, u := range stream {
		forceSpace := true
		var uppercase *bool

		if prev != nil && prev.kind == kindActions {
			if v, ok := prev.actions[dictionary.SpaceNext]; ok {
				forceSpace = v
			}
			if v, ok := prev.actions[dictionary.CaseNext]; ok {
				vv := v
				uppercase = &vv
			}
		}

		if prev != nil && cur != nil && prev.kind == kindGlued && cur.kind == kindGlued {
			forceSpace = false
		}

		if next != nil && next.kind == kindActions {
			if v, ok := next.actions[dictionary.SpacePrev]; ok {
				forceSpace = v
			}
			if v, ok := next.actions[dictionary.CasePrev]; ok {
				vv := v
				uppercase = &vv
			}
		}

		var str string
		switch {
		case cur == nil:
			prev, cur, next = cur, next, u
			continue
		case cur.kind == kindLit, cur.kind == kindGlued:
			str = cur.text
		case cur.kind == kindUnknown:
			uppercase = nil
			str = cur.text
		default:
			prev, cur, next = cur, next, u
			continue
		}

		if forceSpace {
			result += " "
		}
		if uppercase != nil {
			result += changeFirstLetter(str, *uppercase)
		} else {
			result += str
		}

		prev, cur, next = cur, next, u
	}

	return result
}

// merge folds a raw atom sequence into the normalised unit stream:
// coalescing consecutive TextAction atoms, flattening attached-word runs
// through the orthography engine, and reclassifying digit-only literals
// and unknown strokes as Glued.
func merge(atoms []dictionary.Atom) []unit {
	if len(atoms) == 0 {
		return nil
	}

	acc := make([]unit, 0, len(atoms))
	var actions dictionary.ActionSet
	var words []string
	firstWordAttached := false

	flushActions := func() {
		if actions != nil {
			acc = append(acc, unit{kind: kindActions, actions: actions})
			actions = nil
		}
	}

	flushWords := func() {
		if words == nil {
			return
		}
		if firstWordAttached {
			suppressSpaceOnPrev(&acc)
		}
		acc = append(acc, unit{kind: kindLit, text: orthography.JoinAll(words)})
		words = nil
	}

	// process folds one atom into the running merge state. It is a named
	// closure, not an inline loop body, because a CommandAtom's text_after
	// tail is itself a parsed atom run that must fold through the same
	// state machine as the top-level sequence.
	var process func(dictionary.Atom)
	process = func(a dictionary.Atom) {
		if a.Kind == dictionary.Attached {
			flushActions()
			words = append(words, a.Text)
			if len(words) == 1 {
				firstWordAttached = true
			}
			return
		}

		flushWords()

		switch a.Kind {
		case dictionary.Lit:
			flushActions()
			if numbersOnlyRegex.MatchString(a.Text) {
				acc = append(acc, unit{kind: kindGlued, text: a.Text})
			} else {
				words = []string{a.Text}
			}
			firstWordAttached = false
		case dictionary.UnknownStroke:
			flushActions()
			acc = append(acc, unit{kind: kindUnknown, text: a.Text})
		case dictionary.TextAction:
			if actions == nil {
				actions = a.Actions.Clone()
			} else {
				actions = actions.Merge(a.Actions)
			}
		case dictionary.Glued:
			flushActions()
			acc = append(acc, unit{kind: kindGlued, text: a.Text})
			firstWordAttached = false
		case dictionary.CommandAtom:
			// The command itself renders no text. A text_after tail
			// carries formatting directives (attach, case) that apply to
			// whatever text follows once the command is no longer the
			// newest stroke; fold its parsed atoms in right here.
			if a.TextAfter != nil && *a.TextAfter != "" {
				if tail, cerr := dictionary.ParseTranslation("text_after", *a.TextAfter); cerr == nil {
					for _, ta := range tail {
						process(ta)
					}
				}
			}
		}
	}

	for _, a := range atoms {
		process(a)
	}

	flushActions()
	flushWords()

	for i := range acc {
		if acc[i].kind == kindUnknown && numberTranslationRegex.MatchString(acc[i].text) {
			acc[i] = unit{kind: kindGlued, text: removeDashes(acc[i].text)}
		}
	}

	return acc
}

// suppressSpaceOnPrev installs space-next=false on the action set
// immediately preceding an attached-word group's first word, creating
// the action slot if none exists.
func suppressSpaceOnPrev(acc *[]unit) {
	if len(*acc) == 0 {
		*acc = append(*acc, unit{kind: kindActions, actions: dictionary.ActionSet{dictionary.SpaceNext: false}})
		return
	}
	last := len(*acc) - 1
	if (*acc)[last].kind == kindActions {
		merged := (*acc)[last].actions.Clone()
		merged[dictionary.SpaceNext] = false
		(*acc)[last].actions = merged
		return
	}
	*acc = append(*acc, unit{kind: kindActions, actions: dictionary.ActionSet{dictionary.SpaceNext: false}})
}

func removeDashes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '-' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// changeFirstLetter upper- or lowercases the first Unicode code point of
// word, leaving the remainder untouched.
func changeFirstLetter(word string, uppercase bool) string {
	if word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	rest := word[size:]
	var changed string
	if uppercase {
		changed = upperCaser.String(string(r))
	} else {
		changed = lowerCaser.String(string(r))
	}
	return changed + rest
}
