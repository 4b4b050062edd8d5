// Package dictionary parses the Plover-compatible translation
// mini-language into text atoms, and stores layered stroke-sequence
// dictionaries built from them.
package dictionary

import "github.com/stenoglyph/steno/internal/steno/command"

// Directive is one of the four boolean spacing/case directives a
// TextAction atom can carry.
type Directive int

// The closed set of text-action directives.
const (
	SpaceNext Directive = iota
	CaseNext
	SpacePrev
	CasePrev
)

// ActionSet is a set of directives, each with at most one boolean value.
// Merging two action sets (as happens when consecutive TextAction atoms
// coalesce) lets the later set's values win per directive key.
type ActionSet map[Directive]bool

// Merge returns a new ActionSet with other's directives applied on top of
// a's (later wins per key). Neither input is mutated.
func (a ActionSet) Merge(other ActionSet) ActionSet {
	merged := make(ActionSet, len(a)+len(other))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Clone returns a shallow copy of the action set.
func (a ActionSet) Clone() ActionSet {
	return a.Merge(nil)
}

// AtomKind tags an Atom's variant. Atom is a closed sum; switch
// exhaustively on Kind.
type AtomKind int

const (
	// Lit is a literal text fragment.
	Lit AtomKind = iota
	// Attached is a fragment requesting orthographic join with the
	// preceding run of attached/literal words.
	Attached
	// Glued is a fragment that suppresses space only against adjacent
	// Glued fragments.
	Glued
	// UnknownStroke is synthesised when lookup fails; it never appears in
	// dictionary source.
	UnknownStroke
	// TextAction carries a set of spacing/case directives.
	TextAction
	// CommandAtom carries one or more typed commands for the controller.
	CommandAtom
)

// Atom is one unit produced by dictionary parsing or lookup.
type Atom struct {
	Kind AtomKind

	// Text holds the payload for Lit, Attached, Glued, and the raw label
	// for UnknownStroke.
	Text string

	// Actions holds the directive set for TextAction atoms.
	Actions ActionSet

	// Command fields, valid when Kind == CommandAtom.
	Cmds                []command.Command
	TextAfter           *string
	SuppressSpaceBefore bool
}

// NewLit builds a Lit atom.
func NewLit(text string) Atom { return Atom{Kind: Lit, Text: text} }

// NewAttached builds an Attached atom.
func NewAttached(text string) Atom { return Atom{Kind: Attached, Text: text} }

// NewGlued builds a Glued atom.
func NewGlued(text string) Atom { return Atom{Kind: Glued, Text: text} }

// NewUnknownStroke builds an UnknownStroke atom from a raw stroke label.
func NewUnknownStroke(raw string) Atom { return Atom{Kind: UnknownStroke, Text: raw} }

// NewTextAction builds a TextAction atom from a single directive.
func NewTextAction(d Directive, v bool) Atom {
	return Atom{Kind: TextAction, Actions: ActionSet{d: v}}
}

// NewCommand builds a CommandAtom atom.
func NewCommand(cmds []command.Command, textAfter *string, suppressSpaceBefore bool) Atom {
	return Atom{
		Kind:                CommandAtom,
		Cmds:                cmds,
		TextAfter:           textAfter,
		SuppressSpaceBefore: suppressSpaceBefore,
	}
}
