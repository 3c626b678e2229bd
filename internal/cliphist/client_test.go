package cliphist

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/five82/clipper/internal/runner"
)

type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []runner.Command
}

func (f *fakeRunner) Run(_ context.Context, cmd runner.Command) (string, error) {
	f.calls = append(f.calls, cmd)
	key := cmd.String()
	if err := f.errs[key]; err != nil {
		return "", err
	}
	return f.outputs[key], nil
}

type fakeWriter struct {
	payloads []string
	err      error
}

func (w *fakeWriter) Write(_ context.Context, payload string) error {
	if w.err != nil {
		return w.err
	}
	w.payloads = append(w.payloads, payload)
	return nil
}

func newTestClient(t *testing.T, r *fakeRunner, w Writer) *Client {
	t.Helper()
	c, err := NewClient(r, DefaultCommands(), 50, w)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func TestNewClient_RejectsEmptyCommands(t *testing.T) {
	cmds := DefaultCommands()
	cmds.Wipe = nil
	_, err := NewClient(&fakeRunner{}, cmds, 50, nil)
	if err == nil || !strings.Contains(err.Error(), "wipe") {
		t.Fatalf("NewClient error = %v, want wipe command error", err)
	}
	if _, err := NewClient(nil, DefaultCommands(), 50, nil); err == nil {
		t.Fatal("NewClient(nil runner) returned nil error")
	}
}

func TestClientList(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"cliphist list": "a1\thello world\na2\t[[ binary data ]]\n"}}
	entries, err := newTestClient(t, r, nil).List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 2 || entries[0].ID != "a1" || !entries[1].IsBinary {
		t.Fatalf("List = %#v, want a1 then binary a2", entries)
	}
}

func TestClientList_WrapsRunnerError(t *testing.T) {
	r := &fakeRunner{errs: map[string]error{"cliphist list": &runner.Error{Command: "cliphist list", Err: errors.New("exit status 1")}}}
	_, err := newTestClient(t, r, nil).List(context.Background())
	if !errors.Is(err, runner.ErrCommand) {
		t.Fatalf("List error = %v, want ErrCommand", err)
	}
}

func TestClientCopy_DecodesThenWrites(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"cliphist decode": "full payload"}}
	w := &fakeWriter{}
	if err := newTestClient(t, r, w).Copy(context.Background(), NewEntry("a1", "hello world")); err != nil {
		t.Fatalf("Copy returned error: %v", err)
	}
	if len(r.calls) != 1 || r.calls[0].Stdin != "a1\thello world" {
		t.Fatalf("decode calls = %#v, want stdin %q", r.calls, "a1\thello world")
	}
	if len(w.payloads) != 1 || w.payloads[0] != "full payload" {
		t.Fatalf("writer payloads = %#v, want [full payload]", w.payloads)
	}
}

func TestClientCopy_WriterFailure(t *testing.T) {
	w := &fakeWriter{err: errors.New("no display")}
	err := newTestClient(t, &fakeRunner{}, w).Copy(context.Background(), NewEntry("a1", "x"))
	if err == nil || !strings.Contains(err.Error(), "no display") {
		t.Fatalf("Copy error = %v, want writer failure", err)
	}
}

func TestClientCopy_NoWriter(t *testing.T) {
	if err := newTestClient(t, &fakeRunner{}, nil).Copy(context.Background(), NewEntry("a1", "x")); err == nil {
		t.Fatal("Copy without writer returned nil error")
	}
}

func TestClientDeleteAndWipe(t *testing.T) {
	r := &fakeRunner{}
	c := newTestClient(t, r, nil)
	if err := c.Delete(context.Background(), NewEntry("a2", "[[ binary data ]]")); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := c.Wipe(context.Background()); err != nil {
		t.Fatalf("Wipe returned error: %v", err)
	}
	if len(r.calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(r.calls))
	}
	if r.calls[0].String() != "cliphist delete" || r.calls[0].Stdin != "a2\t[[ binary data ]]" {
		t.Fatalf("delete call = %#v", r.calls[0])
	}
	if r.calls[1].String() != "cliphist wipe" || r.calls[1].Stdin != "" {
		t.Fatalf("wipe call = %#v", r.calls[1])
	}
}
