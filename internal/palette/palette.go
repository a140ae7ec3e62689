// Package palette holds the ANSI color data behind the built-in themes.
package palette

import "fmt"

// SGR attribute prefixes.
const (
	Bold      = "\x1b[1m"
	Dim       = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette names the foreground colors a theme assigns to the semantic
// styles. Empty fields render unstyled.
type Palette struct {
	Text       string
	Code       string
	Section    string
	Definition string
	Value      string
	Truncated  string
}

func fg(r, g, b int) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// PaletteDefault uses the terminal's base colors only.
var PaletteDefault = Palette{
	Code:       "\x1b[36m",
	Section:    "\x1b[33m",
	Definition: "\x1b[32m",
	Value:      "\x1b[35m",
	Truncated:  "\x1b[31m",
}

var PaletteDoomGruvbox = Palette{
	Text:       fg(235, 219, 178),
	Code:       fg(142, 192, 124),
	Section:    fg(250, 189, 47),
	Definition: fg(131, 165, 152),
	Value:      fg(211, 134, 155),
	Truncated:  fg(251, 73, 52),
}

var PaletteDoomDracula = Palette{
	Text:       fg(248, 248, 242),
	Code:       fg(80, 250, 123),
	Section:    fg(189, 147, 249),
	Definition: fg(139, 233, 253),
	Value:      fg(255, 121, 198),
	Truncated:  fg(255, 85, 85),
}

var PaletteDoomNord = Palette{
	Text:       fg(216, 222, 233),
	Code:       fg(163, 190, 140),
	Section:    fg(136, 192, 208),
	Definition: fg(129, 161, 193),
	Value:      fg(180, 142, 173),
	Truncated:  fg(191, 97, 106),
}

var PaletteSolarizedDark = Palette{
	Text:       fg(131, 148, 150),
	Code:       fg(42, 161, 152),
	Section:    fg(181, 137, 0),
	Definition: fg(38, 139, 210),
	Value:      fg(211, 54, 130),
	Truncated:  fg(220, 50, 47),
}

var PaletteSolarizedLight = Palette{
	Text:       fg(101, 123, 131),
	Code:       fg(42, 161, 152),
	Section:    fg(203, 75, 22),
	Definition: fg(38, 139, 210),
	Value:      fg(108, 113, 196),
	Truncated:  fg(220, 50, 47),
}

var PaletteGithubDark = Palette{
	Text:       fg(201, 209, 217),
	Code:       fg(121, 192, 255),
	Section:    fg(88, 166, 255),
	Definition: fg(126, 231, 135),
	Value:      fg(210, 168, 255),
	Truncated:  fg(255, 123, 114),
}

var PaletteGithubLight = Palette{
	Text:       fg(31, 35, 40),
	Code:       fg(5, 80, 174),
	Section:    fg(9, 105, 218),
	Definition: fg(17, 99, 41),
	Value:      fg(130, 80, 223),
	Truncated:  fg(207, 34, 36),
}
