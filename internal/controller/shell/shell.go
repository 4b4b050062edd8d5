// Package shell is the one controller that acts on the outside world: it
// executes command.Command Shell commands as real subprocesses, ignoring
// their exit status per the command model's contract.
package shell

import (
	"context"
	"fmt"
	"os/exec"

	shellquote "github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/stenoglyph/steno/internal/controller"
	"github.com/stenoglyph/steno/internal/steno/command"
)

var _ controller.Sink = (*Controller)(nil)

// runnable is the subset of *exec.Cmd this controller depends on, so
// tests can substitute a fake that never touches the OS.
type runnable interface {
	Run() error
}

// builder abstracts exec.CommandContext so it can be swapped for a fake
// in tests.
type builder func(ctx context.Context, program string, args []string) runnable

// Controller spawns shell commands and logs, but never prints, what it
// ran. It holds the context passed to New; the core itself never sees a
// context, and cancelling this one cancels in-flight subprocesses.
type Controller struct {
	ctx    context.Context
	logger *zap.Logger
	build  builder
}

// New builds a Controller that logs to logger and executes real
// subprocesses under ctx.
func New(ctx context.Context, logger *zap.Logger) *Controller {
	return &Controller{
		ctx:    ctx,
		logger: logger,
		build: func(ctx context.Context, program string, args []string) runnable {
			return exec.CommandContext(ctx, program, args...)
		},
	}
}

// Apply runs every KindShell command in cmds and ignores everything else.
// A non-zero exit status is swallowed, matching the command model's
// "spawn a subprocess and ignore its status" contract; a failure to start
// the process at all (missing binary, permission denied) is reported as a
// CommandExecutionFault.
func (c *Controller) Apply(cmds []command.Command) error {
	for _, cmd := range cmds {
		if cmd.Kind != command.KindShell {
			continue
		}
		if err := c.run(cmd); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) run(cmd command.Command) error {
	audit := shellquote.Join(append([]string{cmd.Program}, cmd.Args...)...)
	c.logger.Debug("executing shell command", zap.String("command", audit))

	proc := c.build(c.ctx, cmd.Program, cmd.Args)
	err := proc.Run()
	if err == nil {
		return nil
	}
	if _, exited := err.(*exec.ExitError); exited {
		return nil
	}
	return fmt.Errorf("shell command %q failed to start: %w", audit, err)
}
