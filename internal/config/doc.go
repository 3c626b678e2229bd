// Package config resolves clipper's configuration.
//
// # Sources
//
// Values are layered with viper, lowest to highest precedence:
//
//  1. Built-in defaults (SetDefaults)
//  2. ~/.config/clipper/config.toml, or the file given with --config
//  3. CLIPPER_* environment variables (CLIPPER_MAX_ITEMS, ...)
//  4. Command-line flags
//
// The cmd/clipper package owns the viper instance and binds flags; this
// package only registers defaults and turns the merged view into a Config.
//
// # Commands
//
// History commands are argv arrays and are never run through a shell:
//
//	list_command   = ["cliphist", "list"]
//	decode_command = ["cliphist", "decode"]
//	delete_command = ["cliphist", "delete"]
//	wipe_command   = ["cliphist", "wipe"]
//	copy_command   = ["wl-copy"]
//
// From an environment variable a plain string is split on whitespace.
//
// # Validation
//
// FromViper validates the result; every failure wraps ErrInvalid. 
package config
