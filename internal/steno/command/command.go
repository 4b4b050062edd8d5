// Package command defines the closed set of edit commands and key events
// the translation core hands to external controllers. Commands are plain
// values: the core neither executes nor validates them.
package command

// Kind tags a Command's variant. Command is a closed sum; switch
// exhaustively on Kind rather than extending it.
type Kind int

const (
	// KindReplace retracts N characters and inserts text.
	KindReplace Kind = iota
	// KindPressKey presses one chorded key event.
	KindPressKey
	// KindRawKey sends a platform-raw scancode.
	KindRawKey
	// KindShell spawns a subprocess and ignores its status.
	KindShell
	// KindPrintHello is a debug sentinel.
	KindPrintHello
	// KindNoOp is an inert sentinel.
	KindNoOp
)

// Command is one edit command or key event.
type Command struct {
	Kind Kind

	// Replace fields.
	Retract int
	Insert  string

	// PressKey fields.
	Key       Key
	Modifiers []Modifier

	// RawKey field.
	RawCode uint16

	// Shell fields.
	Program string
	Args    []string
}

// Replace builds a Replace command.
func Replace(retract int, insert string) Command {
	return Command{Kind: KindReplace, Retract: retract, Insert: insert}
}

// AddText builds a Replace command that inserts text without retracting.
func AddText(text string) Command {
	return Replace(0, text)
}

// PressKey builds a PressKey command.
func PressKey(key Key, modifiers []Modifier) Command {
	return Command{Kind: KindPressKey, Key: key, Modifiers: modifiers}
}

// RawKey builds a RawKey command.
func RawKey(code uint16) Command {
	return Command{Kind: KindRawKey, RawCode: code}
}

// Shell builds a Shell command.
func Shell(program string, args []string) Command {
	return Command{Kind: KindShell, Program: program, Args: args}
}

// PrintHello is the debug sentinel command.
var PrintHello = Command{Kind: KindPrintHello}

// NoOp is the inert sentinel command.
var NoOp = Command{Kind: KindNoOp}

// KeyKind tags a Key's variant.
type KeyKind int

const (
	// KeySpecial is a named special key (function keys, navigation, etc.).
	KeySpecial KeyKind = iota
	// KeyLayout is a literal Unicode scalar key.
	KeyLayout
)

// Key is a key that can be pressed: either a named special key or a
// literal Unicode scalar.
type Key struct {
	Kind    KeyKind
	Special SpecialKey
	Layout  rune
}

// SpecialKey enumerates the fixed set of named special keys.
type SpecialKey string

// The fixed enumeration of special keys.
const (
	SpecialBackspace  SpecialKey = "Backspace"
	SpecialCapsLock   SpecialKey = "CapsLock"
	SpecialDelete     SpecialKey = "Delete"
	SpecialDownArrow  SpecialKey = "DownArrow"
	SpecialEnd        SpecialKey = "End"
	SpecialEscape     SpecialKey = "Escape"
	SpecialF1         SpecialKey = "F1"
	SpecialF2         SpecialKey = "F2"
	SpecialF3         SpecialKey = "F3"
	SpecialF4         SpecialKey = "F4"
	SpecialF5         SpecialKey = "F5"
	SpecialF6         SpecialKey = "F6"
	SpecialF7         SpecialKey = "F7"
	SpecialF8         SpecialKey = "F8"
	SpecialF9         SpecialKey = "F9"
	SpecialF10        SpecialKey = "F10"
	SpecialF11        SpecialKey = "F11"
	SpecialF12        SpecialKey = "F12"
	SpecialHome       SpecialKey = "Home"
	SpecialLeftArrow  SpecialKey = "LeftArrow"
	SpecialPageDown   SpecialKey = "PageDown"
	SpecialPageUp     SpecialKey = "PageUp"
	SpecialReturn     SpecialKey = "Return"
	SpecialRightArrow SpecialKey = "RightArrow"
	SpecialSpace      SpecialKey = "Space"
	SpecialTab        SpecialKey = "Tab"
	SpecialUpArrow    SpecialKey = "UpArrow"
)

// SpecialKeyOf builds a Key from a SpecialKey.
func SpecialKeyOf(k SpecialKey) Key {
	return Key{Kind: KeySpecial, Special: k}
}

// LayoutKeyOf builds a Key from a literal rune.
func LayoutKeyOf(r rune) Key {
	return Key{Kind: KeyLayout, Layout: r}
}

// Modifier is a key modifier.
type Modifier string

// The fixed set of modifiers.
const (
	ModAlt     Modifier = "Alt"
	ModControl Modifier = "Control"
	ModMeta    Modifier = "Meta"
	ModOption  Modifier = "Option"
	ModShift   Modifier = "Shift"
	ModFn      Modifier = "Fn"
)
