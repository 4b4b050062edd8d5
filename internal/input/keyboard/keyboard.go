// Package keyboard loads the YAML keymap that lets a literal keyboard
// stand in for a steno machine: a configuration-only mapping from
// physical key names to the chord letters they contribute. No OS-level
// key hook is implemented here; the machine driver that actually listens
// for key events lives outside this module's scope.
package keyboard

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/stenoglyph/steno/internal/steno/stroke"
)

// Keymap maps a literal keyboard key name to the steno chord letters it
// contributes, e.g. {"s": ["S-"], "t": ["T-"]}.
type Keymap map[string][]string

// Load reads and parses a keymap document from path.
func Load(path string) (Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses a keymap document already held in memory.
func Parse(data []byte) (Keymap, error) {
	var m Keymap
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing keymap: %w", err)
	}
	return m, nil
}

// Chord resolves a simultaneously pressed set of physical keys into the
// Stroke they form, in the order the keys are given. An unmapped key
// fails the whole chord.
func (k Keymap) Chord(keys []string) (stroke.Stroke, bool) {
	if len(keys) == 0 {
		return stroke.Stroke{}, false
	}

	var b strings.Builder
	for _, key := range keys {
		letters, ok := k[key]
		if !ok {
			return stroke.Stroke{}, false
		}
		for _, l := range letters {
			b.WriteString(l)
		}
	}

	raw := strings.ReplaceAll(b.String(), "--", "-")
	if raw == "" {
		return stroke.Stroke{}, false
	}
	return stroke.New(raw), true
}
