// Package print is the terminal controller: it renders each command.Command
// as a colourised diff line, never executing anything. PressKey, RawKey,
// and Shell commands are shown as a bracketed description only, the same
// boundary the teacher's internal/format.DiffResult.String() draws between
// describing a change and applying it.
package print

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/stenoglyph/steno/internal/controller"
	"github.com/stenoglyph/steno/internal/steno/command"
)

var _ controller.Sink = (*Controller)(nil)

// Controller writes a human-readable rendering of commands to an
// io.Writer. It holds no OS resources and performs no side effects beyond
// writing text.
type Controller struct {
	w     io.Writer
	red   *color.Color
	green *color.Color
	cyan  *color.Color
}

// New builds a Controller writing to w.
func New(w io.Writer) *Controller {
	return &Controller{
		w:     w,
		red:   color.New(color.FgRed),
		green: color.New(color.FgGreen),
		cyan:  color.New(color.FgCyan),
	}
}

// Apply renders every command in cmds, in order. It never fails: printing
// is best-effort, matching fatih/color's own fire-and-forget Fprintf
// calls.
func (c *Controller) Apply(cmds []command.Command) error {
	for _, cmd := range cmds {
		c.Handle(cmd)
	}
	return nil
}

// Handle renders one command. It never calls os/exec or any other
// execution primitive.
func (c *Controller) Handle(cmd command.Command) {
	switch cmd.Kind {
	case command.KindNoOp:
		return
	case command.KindReplace:
		c.handleReplace(cmd)
	case command.KindPressKey:
		c.cyan.Fprintf(c.w, "[press %s]\n", describeKey(cmd))
	case command.KindRawKey:
		c.cyan.Fprintf(c.w, "[raw 0x%04x]\n", cmd.RawCode)
	case command.KindShell:
		c.cyan.Fprintf(c.w, "[shell %s]\n", describeShell(cmd))
	case command.KindPrintHello:
		fmt.Fprintln(c.w, "hello")
	}
}

func (c *Controller) handleReplace(cmd command.Command) {
	if cmd.Retract == 0 && cmd.Insert == "" {
		return
	}
	if cmd.Retract > 0 {
		c.red.Fprintf(c.w, "-%d", cmd.Retract)
	}
	if cmd.Insert != "" {
		c.green.Fprintf(c.w, "+%q", cmd.Insert)
	}
	fmt.Fprintln(c.w)
}

func describeKey(cmd command.Command) string {
	var b strings.Builder
	for _, m := range cmd.Modifiers {
		fmt.Fprintf(&b, "%s+", m)
	}
	switch cmd.Key.Kind {
	case command.KeySpecial:
		b.WriteString(string(cmd.Key.Special))
	case command.KeyLayout:
		b.WriteRune(cmd.Key.Layout)
	}
	return b.String()
}

func describeShell(cmd command.Command) string {
	return strings.Join(append([]string{cmd.Program}, cmd.Args...), " ")
}
