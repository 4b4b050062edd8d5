// Package controller defines the Sink interface both output controllers
// implement: print (C16) and shell (C17).
package controller

import "github.com/stenoglyph/steno/internal/steno/command"

// Sink consumes the commands produced by one translate or undo step.
type Sink interface {
	Apply(cmds []command.Command) error
}
