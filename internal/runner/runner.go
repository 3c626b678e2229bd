package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrCommand is matched by every failure returned from Exec.
var ErrCommand = errors.New("command failed")

const (
	defaultTimeout = 10 * time.Second

	// waitDelay bounds how long Run waits for output pipes after the process
	// exits. Clipboard-set tools such as wl-copy fork a child that keeps
	// serving the selection and inherits stdout.
	waitDelay = 250 * time.Millisecond
)

// Command is a single external process invocation. Stdin, when set, is fed to
// the process verbatim.
type Command struct {
	Name  string
	Args  []string
	Stdin string
}

// FromArgv builds a Command from an argv slice as stored in configuration.
func FromArgv(argv []string) Command {
	if len(argv) == 0 {
		return Command{}
	}
	args := make([]string, len(argv)-1)
	copy(args, argv[1:])
	return Command{Name: argv[0], Args: args}
}

// WithStdin returns a copy of c that feeds in on standard input.
func (c Command) WithStdin(in string) Command {
	c.Stdin = in
	return c
}

func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes external commands and returns their standard output.
type Runner interface {
	Run(ctx context.Context, cmd Command) (string, error)
}

// Ensure Exec implements Runner at compile time.
var _ Runner = (*Exec)(nil)

// Exec runs commands as child processes. One process is spawned per call and
// nothing is retried.
type Exec struct {
	Timeout time.Duration
}

// New returns an Exec with the given per-command timeout; zero uses the default.
func New(timeout time.Duration) *Exec {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Exec{Timeout: timeout}
}

// Run executes cmd and blocks until it exits.
func (e *Exec) Run(ctx context.Context, cmd Command) (string, error) {
	if strings.TrimSpace(cmd.Name) == "" {
		return "", &Error{Command: cmd.String(), Err: errors.New("empty command")}
	}
	if e != nil && e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	proc := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	if cmd.Stdin != "" {
		proc.Stdin = strings.NewReader(cmd.Stdin)
	}
	var stdout, stderr bytes.Buffer
	proc.Stdout = &stdout
	proc.Stderr = &stderr
	proc.WaitDelay = waitDelay

	err := proc.Run()
	if err != nil && !errors.Is(err, exec.ErrWaitDelay) {
		return "", &Error{
			Command: cmd.String(),
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}
	return stdout.String(), nil
}

// Error describes a failed command.
type Error struct {
	Command string
	Stderr  string
	Err     error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Command, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports ErrCommand so callers can match any runner failure.
func (e *Error) Is(target error) bool { return target == ErrCommand }
