package tokfold

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

// markerByte is the reserved sentinel that introduces an inline style
// marker. NUL never appears in document text, which is what makes the
// 2-byte <markerByte><letter> encoding safe to embed in plain strings.
const markerByte = '\x00'

var (
	bulletsUTF8  = []string{"▪", "◆", "▸", "▫", "◇", "▹"}
	bulletsASCII = []string{"o", "*", "+", "-"}
)

// TextAttr measures display properties of text that may contain inline
// style markers and terminal control sequences.
type TextAttr struct {
	bullets []string
}

// NewTextAttr returns a TextAttr for the given text encoding. Any encoding
// other than "utf-8" falls back to the ASCII bullet set.
func NewTextAttr(encoding string) *TextAttr {
	bullets := bulletsUTF8
	if !strings.EqualFold(encoding, "utf-8") && !strings.EqualFold(encoding, "utf8") {
		bullets = bulletsASCII
	}
	return &TextAttr{bullets: bullets}
}

// Bullets returns the bullet glyph cycle for nested lists.
func (a *TextAttr) Bullets() []string {
	return a.bullets
}

// DisplayWidth returns the rendered column width of text. Style markers
// and ANSI escape sequences count as zero columns; wide runes count as two.
func (a *TextAttr) DisplayWidth(text string) int {
	return ansi.PrintableRuneWidth(StripMarkers(text))
}

// ControlSequenceLen returns the byte length of the control sequence at
// the start of text, or 0 if text does not start with one. Style markers
// and CSI sequences are recognized.
func (a *TextAttr) ControlSequenceLen(text string) int {
	if text == "" {
		return 0
	}
	if text[0] == markerByte {
		if len(text) < 2 {
			return len(text)
		}
		return 2
	}
	if text[0] != '\x1b' {
		return 0
	}
	if len(text) < 2 || text[1] != '[' {
		return 1
	}
	for i := 2; i < len(text); i++ {
		c := text[i]
		if c >= '@' && c <= '~' {
			return i + 1
		}
	}
	return len(text)
}

// Clip returns text truncated to at most width display columns, never
// splitting a wide rune in half.
func (a *TextAttr) Clip(text string, width int) string {
	if width <= 0 {
		return ""
	}
	used := 0
	for i, r := range text {
		w := runewidth.RuneWidth(r)
		if used+w > width {
			return text[:i]
		}
		used += w
	}
	return text
}

// StripMarkers returns text with every inline style marker removed.
func StripMarkers(text string) string {
	j := strings.IndexByte(text, markerByte)
	if j < 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for {
		b.WriteString(text[:j])
		if j+2 >= len(text) {
			return b.String()
		}
		text = text[j+2:]
		j = strings.IndexByte(text, markerByte)
		if j < 0 {
			b.WriteString(text)
			return b.String()
		}
	}
}
