// Package cliphist talks to the cliphist clipboard-history tool.
//
// # Listing Protocol
//
// `cliphist list` prints one record per line, most recent first:
//
//	<id>\t<preview>
//
// Binary payloads are listed with a preview starting with "[[ binary", for
// example "[[ binary data 12 KiB png 640x480 ]]". Parse turns this output into
// Entry values; malformed lines degrade instead of failing.
//
// # Mutating Commands
//
// decode and delete read the reconstructed "<id>\t<preview>" line on stdin;
// wipe takes no input. Copy is composite: the decoded payload is handed to a
// Writer (see package clipboard), which puts it on the system clipboard.
//
// # Configuration
//
// Every invocation is an argv from Commands, so alternative history tools
// that speak the same line protocol can be configured without code changes.
package cliphist
