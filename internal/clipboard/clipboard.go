// Package clipboard puts decoded history payloads on the system clipboard.
//
// Two backends exist:
//
//	command: pipes the payload into a clipboard-set tool (wl-copy by default)
//	native:  writes through golang.design/x/clipboard in-process
//
// The native backend owns the selection from inside clipper, so on X11 and
// Wayland the contents survive clipper's exit only when a clipboard
// persistence daemon is running. The command backend has no such caveat
// because wl-copy forks its own server process.
package clipboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/clipper/internal/cliphist"
	"github.com/five82/clipper/internal/runner"
)

// Backend names accepted by New.
const (
	BackendCommand = "command"
	BackendNative  = "native"
)

// Writer is a cliphist.Writer that can describe itself for logging.
type Writer interface {
	cliphist.Writer
	Name() string
}

// New returns the backend selected by name. copyArgv is used by the command
// backend only.
func New(name string, r runner.Runner, copyArgv []string) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendCommand:
		w, err := NewCommand(r, copyArgv)
		if err != nil {
			return nil, err
		}
		return w, nil
	case BackendNative:
		w, err := NewNative()
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", name)
	}
}

// Command feeds the payload to an external clipboard-set tool on stdin.
type Command struct {
	runner runner.Runner
	cmd    runner.Command
}

// NewCommand builds a Command writer for argv, e.g. ["wl-copy"].
func NewCommand(r runner.Runner, argv []string) (*Command, error) {
	if r == nil {
		return nil, fmt.Errorf("runner is nil")
	}
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return nil, fmt.Errorf("copy command is empty")
	}
	return &Command{runner: r, cmd: runner.FromArgv(argv)}, nil
}

func (c *Command) Name() string { return "command (" + c.cmd.String() + ")" }

// Write runs the clipboard-set tool with payload on stdin.
func (c *Command) Write(ctx context.Context, payload string) error {
	if _, err := c.runner.Run(ctx, c.cmd.WithStdin(payload)); err != nil {
		return fmt.Errorf("set clipboard: %w", err)
	}
	return nil
}
