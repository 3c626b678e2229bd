// Package logtail reads the end of clipper's log file and renders its JSON
// records for the terminal.
//
// Read keeps a ring buffer of maxLines entries, so only one pass over the
// file is needed and memory stays bounded by the requested tail:
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//	for _, line := range logtail.NewFormatter(nil).Lines(lines) {
//		fmt.Println(line)
//	}
//
// Formatter expects slog's JSON handler output. Each record becomes
// "date time LEVEL message key=value ...", with the attributes sorted by
// key. Anything else in the file is printed unchanged.
package logtail
