// Package diff computes the minimal edit command between two rendered
// translation states, and fast-paths trailing command atoms straight
// through to the controller layer without ever rendering them.
package diff

import (
	"reflect"
	"unicode/utf8"

	"github.com/stenoglyph/steno/internal/steno/command"
	"github.com/stenoglyph/steno/internal/steno/dictionary"
	"github.com/stenoglyph/steno/internal/steno/format"
)

// Translate computes the commands that take the rendering of old to the
// rendering of new. When new extends old by exactly one trailing command
// atom, that atom's commands are forwarded directly (the command fast
// path), optionally prefixed with a single-character retraction when the
// command requests suppression of a trailing space. Otherwise the two
// states are rendered to strings and diffed.
func Translate(old, new []dictionary.Atom) []command.Command {
	oldText, _ := format.ExtractCommands(old)
	oldParsed := format.Render(oldText)

	if len(old)+1 == len(new) {
		last := new[len(new)-1]
		if last.Kind == dictionary.CommandAtom && hasPrefix(new, old) {
			cmds := make([]command.Command, len(last.Cmds))
			copy(cmds, last.Cmds)
			if last.SuppressSpaceBefore && lastRune(oldParsed) == ' ' {
				cmds = append([]command.Command{command.Replace(1, "")}, cmds...)
			}
			return cmds
		}
	}

	newText, _ := format.ExtractCommands(new)
	newParsed := format.Render(newText)

	return []command.Command{textDiff(oldParsed, newParsed)}
}

// hasPrefix reports whether atoms starts with exactly the atoms of prefix.
func hasPrefix(atoms, prefix []dictionary.Atom) bool {
	if len(prefix) > len(atoms) {
		return false
	}
	for i := range prefix {
		if !reflect.DeepEqual(atoms[i], prefix[i]) {
			return false
		}
	}
	return true
}

func lastRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

// textDiff computes the Unicode-code-point-aware replace command that
// turns old into new: the length of the common rune prefix determines how
// many trailing runes of old are retracted before inserting new's
// remaining runes.
func textDiff(old, new string) command.Command {
	if old == "" {
		if new == "" {
			return command.NoOp
		}
		return command.AddText(new)
	}
	if new == "" {
		return command.Replace(utf8.RuneCountInString(old), "")
	}

	oldRunes := []rune(old)
	newRunes := []rune(new)

	loopSize := len(oldRunes)
	if len(newRunes) < loopSize {
		loopSize = len(newRunes)
	}

	i := 0
	for i < loopSize && oldRunes[i] == newRunes[i] {
		i++
	}

	if i == len(oldRunes) && len(oldRunes) == len(newRunes) {
		return command.NoOp
	}

	return command.Replace(len(oldRunes)-i, string(newRunes[i:]))
}
