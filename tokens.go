package tokfold

// StyleTag identifies how a run of text should be rendered. Tags carry no
// text; callers map them to concrete styling (see Theme).
type StyleTag uint8

const (
	// StyleNormal is plain body text.
	StyleNormal StyleTag = iota
	// StyleBold is bold text.
	StyleBold
	// StyleItalic is italic text.
	StyleItalic
	// StyleBoldItalic is bold+italic text.
	StyleBoldItalic
	// StyleCode is code text for command line examples.
	StyleCode
	// StyleSection is a section header.
	StyleSection
	// StyleDefinition is a definition list item (flag, subcommand, choice).
	StyleDefinition
	// StyleValue is a definition list item value (flag value).
	StyleValue
	// StyleTruncated tags the trailing ellipsis of height-truncated output.
	StyleTruncated
)

var styleTagNames = [...]string{
	StyleNormal:     "Normal",
	StyleBold:       "Bold",
	StyleItalic:     "Italic",
	StyleBoldItalic: "BoldItalic",
	StyleCode:       "Code",
	StyleSection:    "Section",
	StyleDefinition: "Definition",
	StyleValue:      "Value",
	StyleTruncated:  "Truncated",
}

func (t StyleTag) String() string {
	if int(t) < len(styleTagNames) {
		return styleTagNames[t]
	}
	return "Unknown"
}

// Run is a contiguous span of text sharing one style tag. Empty runs are
// never stored.
type Run struct {
	Tag  StyleTag
	Text string
}

// Line is one finished output row, an ordered sequence of runs.
type Line []Run

// Text returns the concatenated text of the line without style tags.
func (l Line) Text() string {
	if len(l) == 0 {
		return ""
	}
	total := 0
	for _, run := range l {
		total += len(run.Text)
	}
	buf := make([]byte, 0, total)
	for _, run := range l {
		buf = append(buf, run.Text...)
	}
	return string(buf)
}

// FontAttr is a font attribute toggled by Font.
type FontAttr uint8

const (
	// FontBold toggles bold.
	FontBold FontAttr = iota
	// FontItalic toggles italic.
	FontItalic
	// FontCode toggles code.
	FontCode
)
