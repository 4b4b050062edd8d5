package dictionary

import (
	"encoding/json"

	"github.com/stenoglyph/steno/internal/steno/command"
	"github.com/stenoglyph/steno/internal/steno/dicterr"
)

// parseCommand decodes one element of a "cmds" array. Commands are tagged
// by their outer JSON shape: a bare string for the two sentinels, or a
// single-key object naming the variant, per the schema in SPEC_FULL.md §6.
func parseCommand(key string, raw json.RawMessage) (command.Command, *dicterr.ConfigError) {
	var sentinel string
	if err := json.Unmarshal(raw, &sentinel); err == nil {
		switch sentinel {
		case "PrintHello":
			return command.PrintHello, nil
		case "NoOp":
			return command.NoOp, nil
		default:
			return command.Command{}, dicterr.NewInvalidCommand(key, "unknown command sentinel "+sentinel)
		}
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || len(obj) != 1 {
		return command.Command{}, dicterr.NewInvalidCommand(key, "command must be a string sentinel or a single-key object")
	}

	for tag, payload := range obj {
		switch tag {
		case "Replace":
			var args []json.RawMessage
			if err := json.Unmarshal(payload, &args); err != nil || len(args) != 2 {
				return command.Command{}, dicterr.NewInvalidCommand(key, "Replace expects [retract, insert]")
			}
			var retract int
			var insert string
			if err := json.Unmarshal(args[0], &retract); err != nil {
				return command.Command{}, dicterr.NewInvalidCommand(key, "Replace retract count must be an integer")
			}
			if err := json.Unmarshal(args[1], &insert); err != nil {
				return command.Command{}, dicterr.NewInvalidCommand(key, "Replace insert text must be a string")
			}
			return command.Replace(retract, insert), nil

		case "Keys":
			var args []json.RawMessage
			if err := json.Unmarshal(payload, &args); err != nil || len(args) != 2 {
				return command.Command{}, dicterr.NewInvalidCommand(key, "Keys expects [key, modifiers]")
			}
			k, cerr := parseKey(key, args[0])
			if cerr != nil {
				return command.Command{}, cerr
			}
			var rawMods []string
			if err := json.Unmarshal(args[1], &rawMods); err != nil {
				return command.Command{}, dicterr.NewInvalidCommand(key, "Keys modifiers must be an array of strings")
			}
			mods := make([]command.Modifier, len(rawMods))
			for i, m := range rawMods {
				mods[i] = command.Modifier(m)
			}
			return command.PressKey(k, mods), nil

		case "Raw":
			var code uint16
			if err := json.Unmarshal(payload, &code); err != nil {
				return command.Command{}, dicterr.NewInvalidCommand(key, "Raw expects a u16 scancode")
			}
			return command.RawKey(code), nil

		case "Shell":
			var args []json.RawMessage
			if err := json.Unmarshal(payload, &args); err != nil || len(args) != 2 {
				return command.Command{}, dicterr.NewInvalidCommand(key, "Shell expects [program, args]")
			}
			var program string
			var shellArgs []string
			if err := json.Unmarshal(args[0], &program); err != nil {
				return command.Command{}, dicterr.NewInvalidCommand(key, "Shell program must be a string")
			}
			if err := json.Unmarshal(args[1], &shellArgs); err != nil {
				return command.Command{}, dicterr.NewInvalidCommand(key, "Shell args must be an array of strings")
			}
			return command.Shell(program, shellArgs), nil

		default:
			return command.Command{}, dicterr.NewInvalidCommand(key, "unknown command variant "+tag)
		}
	}

	// unreachable: the len(obj) != 1 check above guarantees one iteration
	return command.Command{}, dicterr.NewInvalidCommand(key, "empty command object")
}

// parseKey decodes a {"Special": "..."} or {"Layout": "c"} key object.
func parseKey(key string, raw json.RawMessage) (command.Key, *dicterr.ConfigError) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || len(obj) != 1 {
		return command.Key{}, dicterr.NewInvalidCommand(key, "key must be a single-key object")
	}

	for tag, payload := range obj {
		switch tag {
		case "Special":
			var name string
			if err := json.Unmarshal(payload, &name); err != nil {
				return command.Key{}, dicterr.NewInvalidCommand(key, "Special key name must be a string")
			}
			return command.SpecialKeyOf(command.SpecialKey(name)), nil
		case "Layout":
			var s string
			if err := json.Unmarshal(payload, &s); err != nil {
				return command.Key{}, dicterr.NewInvalidCommand(key, "Layout key must be a single-character string")
			}
			runes := []rune(s)
			if len(runes) != 1 {
				return command.Key{}, dicterr.NewInvalidCommand(key, "Layout key must be exactly one character")
			}
			return command.LayoutKeyOf(runes[0]), nil
		default:
			return command.Key{}, dicterr.NewInvalidCommand(key, "unknown key variant "+tag)
		}
	}

	return command.Key{}, dicterr.NewInvalidCommand(key, "empty key object")
}
