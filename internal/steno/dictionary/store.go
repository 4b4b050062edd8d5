package dictionary

import (
	"encoding/json"
	"fmt"

	"github.com/stenoglyph/steno/internal/steno/command"
	"github.com/stenoglyph/steno/internal/steno/dicterr"
	"github.com/stenoglyph/steno/internal/steno/stroke"
)

// Dictionary is a layered, merged, read-only map from joined
// stroke-sequence keys to atom sequences.
type Dictionary struct {
	entries map[string][]Atom
}

// Lookup performs an exact lookup of a stroke sequence. It returns the
// atom sequence and true on a hit.
func (d *Dictionary) Lookup(strokes []stroke.Stroke) ([]Atom, bool) {
	atoms, ok := d.entries[stroke.Key(strokes)]
	return atoms, ok
}

// Len reports the number of distinct stroke-sequence keys in the merged
// dictionary.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Load parses an ordered list of raw dictionary documents and merges them
// into a single read-only Dictionary. Later documents overwrite earlier
// documents' entries on identical keys. All parse errors across all
// documents are collected and returned together; the dictionary is
// unusable (nil) if any error occurred.
func Load(docs []string) (*Dictionary, dicterr.List) {
	merged := make(map[string][]Atom)
	var allErrors dicterr.List

	for i, doc := range docs {
		layer := fmt.Sprintf("layer %d", i)
		entries, errs := parseDocument(doc, layer)
		allErrors = append(allErrors, errs...)
		for k, v := range entries {
			merged[k] = v
		}
	}

	if len(allErrors) > 0 {
		return nil, allErrors
	}
	return &Dictionary{entries: merged}, nil
}

// parseDocument parses one raw JSON document into its keyed atom
// sequences, reporting every malformed entry rather than stopping at the
// first.
func parseDocument(doc, layer string) (map[string][]Atom, dicterr.List) {
	var probe interface{}
	if err := json.Unmarshal([]byte(doc), &probe); err != nil {
		return nil, dicterr.List{dicterr.NewJSONError(err).WithLayer(layer)}
	}
	if _, ok := probe.(map[string]interface{}); !ok {
		return nil, dicterr.List{dicterr.NewNotObject().WithLayer(layer)}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, dicterr.List{dicterr.NewJSONError(err).WithLayer(layer)}
	}

	entries := make(map[string][]Atom, len(raw))
	var errs dicterr.List

	for key, value := range raw {
		if _, ok := stroke.ParseSequence(key); !ok {
			errs = append(errs, dicterr.NewInvalidStroke(key).WithLayer(layer))
			continue
		}

		atoms, err := parseValue(key, value)
		if err != nil {
			err.WithLayer(layer)
			errs = append(errs, err)
			continue
		}
		entries[key] = atoms
	}

	return entries, errs
}

// parseValue parses one dictionary entry's JSON value, which is either a
// text translation string or a structured command object.
func parseValue(key string, value json.RawMessage) ([]Atom, *dicterr.ConfigError) {
	var text string
	if err := json.Unmarshal(value, &text); err == nil {
		atoms, cerr := ParseTranslation(key, text)
		if cerr != nil {
			return nil, cerr
		}
		return atoms, nil
	}

	var holder struct {
		Cmds                json.RawMessage `json:"cmds"`
		TextAfter           *string         `json:"text_after"`
		SuppressSpaceBefore bool            `json:"suppress_space_before"`
	}
	if err := json.Unmarshal(value, &holder); err != nil || holder.Cmds == nil {
		return nil, dicterr.NewNonStringValue(key)
	}

	var rawCmds []json.RawMessage
	if err := json.Unmarshal(holder.Cmds, &rawCmds); err != nil {
		return nil, dicterr.NewInvalidCommand(key, "cmds is not an array: "+err.Error())
	}

	cmds := make([]command.Command, 0, len(rawCmds))
	for _, rc := range rawCmds {
		c, cerr := parseCommand(key, rc)
		if cerr != nil {
			return nil, cerr
		}
		cmds = append(cmds, c)
	}

	if holder.TextAfter != nil && *holder.TextAfter != "" {
		if _, cerr := ParseTranslation(key, *holder.TextAfter); cerr != nil {
			return nil, cerr
		}
	}

	return []Atom{NewCommand(cmds, holder.TextAfter, holder.SuppressSpaceBefore)}, nil
}
