package cliphist

import (
	"context"
	"fmt"

	"github.com/five82/clipper/internal/runner"
)

// History is the set of operations the popup performs against the external
// store. It is implemented by *Client and can be faked in tests.
type History interface {
	List(ctx context.Context) ([]Entry, error)
	Copy(ctx context.Context, entry Entry) error
	Delete(ctx context.Context, entry Entry) error
	Wipe(ctx context.Context) error
}

// Ensure Client implements History at compile time.
var _ History = (*Client)(nil)

// Writer places a decoded payload on the system clipboard.
type Writer interface {
	Write(ctx context.Context, payload string) error
}

// Commands holds the argv of each external operation.
type Commands struct {
	List   []string
	Decode []string
	Delete []string
	Wipe   []string
}

// DefaultCommands returns the stock cliphist invocations.
func DefaultCommands() Commands {
	return Commands{
		List:   []string{"cliphist", "list"},
		Decode: []string{"cliphist", "decode"},
		Delete: []string{"cliphist", "delete"},
		Wipe:   []string{"cliphist", "wipe"},
	}
}

// Client drives the cliphist command-line tool through a runner.Runner.
type Client struct {
	runner   runner.Runner
	commands Commands
	maxItems int
	writer   Writer
}

// NewClient builds a Client. maxItems bounds every listing; writer receives
// decoded payloads on Copy and may be nil for read-only use.
func NewClient(r runner.Runner, commands Commands, maxItems int, writer Writer) (*Client, error) {
	if r == nil {
		return nil, fmt.Errorf("runner is nil")
	}
	for name, argv := range map[string][]string{
		"list":   commands.List,
		"decode": commands.Decode,
		"delete": commands.Delete,
		"wipe":   commands.Wipe,
	} {
		if len(argv) == 0 {
			return nil, fmt.Errorf("%s command is empty", name)
		}
	}
	return &Client{runner: r, commands: commands, maxItems: maxItems, writer: writer}, nil
}

// List fetches and parses the current history.
func (c *Client) List(ctx context.Context) ([]Entry, error) {
	out, err := c.runner.Run(ctx, runner.FromArgv(c.commands.List))
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return Parse(out, c.maxItems), nil
}

// Decode returns the stored payload for entry.
func (c *Client) Decode(ctx context.Context, entry Entry) (string, error) {
	out, err := c.runner.Run(ctx, runner.FromArgv(c.commands.Decode).WithStdin(entry.Line()))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", entry.ID, err)
	}
	return out, nil
}

// Copy decodes entry and hands the payload to the clipboard writer.
func (c *Client) Copy(ctx context.Context, entry Entry) error {
	if c.writer == nil {
		return fmt.Errorf("copy %s: no clipboard writer configured", entry.ID)
	}
	payload, err := c.Decode(ctx, entry)
	if err != nil {
		return err
	}
	if err := c.writer.Write(ctx, payload); err != nil {
		return fmt.Errorf("copy %s: %w", entry.ID, err)
	}
	return nil
}

// Delete removes entry from the external store.
func (c *Client) Delete(ctx context.Context, entry Entry) error {
	if _, err := c.runner.Run(ctx, runner.FromArgv(c.commands.Delete).WithStdin(entry.Line())); err != nil {
		return fmt.Errorf("delete %s: %w", entry.ID, err)
	}
	return nil
}

// Wipe removes every entry from the external store.
func (c *Client) Wipe(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, runner.FromArgv(c.commands.Wipe)); err != nil {
		return fmt.Errorf("wipe history: %w", err)
	}
	return nil
}
