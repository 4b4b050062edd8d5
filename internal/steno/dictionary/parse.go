package dictionary

import (
	"regexp"
	"strings"

	"github.com/stenoglyph/steno/internal/steno/dicterr"
)

// attachRegex matches the body of a brace-wrapped attach/suffix/prefix
// form: an optional leading "^", arbitrary non-caret text, and an
// optional trailing "^".
var attachRegex = regexp.MustCompile(`^(\^?)([^^]*)(\^?)$`)

// carryingCapRegex strips a "~|" carrying-capitalization prefix from an
// attach body. The prefix is recognized but semantically inert: see the
// open question in SPEC_FULL.md.
var carryingCapRegex = regexp.MustCompile(`^~\|(.+)$`)

// ParseTranslation parses one dictionary value's text-translation string
// into a sequence of Atoms, per the translation mini-language grammar.
func ParseTranslation(key, t string) ([]Atom, *dicterr.ConfigError) {
	if t == "" {
		return nil, dicterr.NewEmptyTranslation(key)
	}

	var atoms []Atom
	start := 0
	inBraces := false

	for i, r := range t {
		switch r {
		case '{':
			if inBraces {
				return nil, dicterr.NewUnbalancedBraces(key, "nested opening bracket").WithKey(key)
			}
			if start < i {
				atoms = append(atoms, NewLit(t[start:i]))
			}
			start = i + 1
			inBraces = true
		case '}':
			if !inBraces {
				return nil, dicterr.NewUnbalancedBraces(key, "extra closing bracket")
			}
			special, err := parseSpecial(key, t[start:i])
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, special...)
			start = i + 1
			inBraces = false
		}
	}

	if inBraces {
		return nil, dicterr.NewUnbalancedBraces(key, "extra opening bracket")
	}
	if start < len(t) {
		atoms = append(atoms, NewLit(t[start:]))
	}

	return atoms, nil
}

// parseSpecial parses the content of one brace-wrapped special form.
func parseSpecial(key, t string) ([]Atom, *dicterr.ConfigError) {
	switch t {
	case "":
		return nil, nil
	case ".", "?", "!":
		return []Atom{
			NewTextAction(SpaceNext, false),
			NewLit(t),
			NewTextAction(CaseNext, true),
		}, nil
	case ",", ":", ";":
		return []Atom{
			NewTextAction(SpaceNext, false),
			NewLit(t),
		}, nil
	case "-|":
		return []Atom{NewTextAction(CaseNext, true)}, nil
	case "*-|":
		return []Atom{NewTextAction(CasePrev, true)}, nil
	case "*?":
		return []Atom{NewTextAction(SpacePrev, true)}, nil
	case "*!":
		return []Atom{NewTextAction(SpacePrev, false)}, nil
	case "bracketleft":
		return []Atom{NewLit("{")}, nil
	case "bracketright":
		return []Atom{NewLit("}")}, nil
	}

	if strings.HasPrefix(t, "&") && len(t) >= 2 {
		return []Atom{NewGlued(t[1:])}, nil
	}

	if groups := attachRegex.FindStringSubmatch(t); groups != nil {
		leadingCaret, body, trailingCaret := groups[1] == "^", groups[2], groups[3] == "^"

		if leadingCaret {
			if body == "" {
				// {^} / {^^}: suppress space on both sides of an empty literal.
				return []Atom{
					NewTextAction(SpaceNext, false),
					NewLit(""),
					NewTextAction(SpaceNext, false),
				}, nil
			}

			body = stripCarryingCap(body)

			if trailingCaret {
				return []Atom{
					NewAttached(body),
					NewTextAction(SpaceNext, false),
				}, nil
			}
			return []Atom{NewAttached(body)}, nil
		}

		if trailingCaret {
			body = stripCarryingCap(body)
			return []Atom{
				NewLit(body),
				NewTextAction(SpaceNext, false),
			}, nil
		}

		// No caret at all: fall through to the error below unless this is
		// a bare carrying-cap literal, which resolves to a plain Lit.
		if stripped := carryingCapRegex.FindStringSubmatch(body); stripped != nil {
			return []Atom{NewLit(stripped[1])}, nil
		}
	}

	return nil, dicterr.NewUnknownSpecial(key, t)
}

func stripCarryingCap(body string) string {
	if m := carryingCapRegex.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	return body
}
