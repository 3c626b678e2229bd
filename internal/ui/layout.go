package ui

// Fallback dimensions until the first WindowSizeMsg arrives.
const (
	defaultWidth      = 65
	defaultListHeight = 12
)

// chromeRows is everything that is not a list row: the frame border (2),
// header, toast line, search box and footer.
const chromeRows = 6

// minListHeight keeps a few rows visible in tiny terminals.
const minListHeight = 3

// Glyphs (Nerd Font).
const (
	iconTitle    = "󰆒"
	iconText     = "󰆒"
	iconBinary   = "󰋩"
	iconWipe     = "󰃢"
	iconConfirm  = "󰗩"
	iconSearch   = ""
	promptSearch = iconSearch + "  "
)
