// Package runner executes external command-line tools and captures their
// standard output.
//
// # Execution Modes
//
// Run is synchronous and blocks the caller until the process exits. It is
// used by the non-interactive CLI subcommands and, inside the popup, only
// from worker goroutines.
//
// Go is the asynchronous form: the work is handed to a goroutine
// and exactly one Result is delivered on a buffered channel. The popup
// controller waits on that channel from a Bubble Tea command, so the result
// re-enters the single-threaded update loop as a message and no state is
// shared with the worker.
//
// # Failures
//
// Non-zero exit, spawn failure, timeout and output-pipe errors are returned
// as *Error, which matches ErrCommand with errors.Is and carries the trimmed
// standard error of the process. Nothing is retried; callers decide whether
// a failure is visible to the user.
//
// Commands are executed directly from an argv, never through a shell, so
// clipboard previews passed on stdin are never interpreted.
package runner
