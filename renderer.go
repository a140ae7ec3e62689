package tokfold

import (
	"strings"
)

const (
	indentStep  = 4
	splitIndent = 2

	defaultWidth = 80

	truncationMarker = "..."
)

// indentLevel carries the left indentation for one list nesting level.
// hanging applies to the first line of an item, indent to continuations.
type indentLevel struct {
	indent  int
	hanging int
}

// overflow records the word that overflowed a line and the columns that
// were still available, for the truncation pass.
type overflow struct {
	word      string
	available int
}

// Renderer lays out structural document events (headings, filled
// paragraphs, lists, examples, synopsis lines, table rows) as a sequence
// of fixed-width lines of styled runs. One Renderer serves one document;
// it is not safe for concurrent use. Finish returns the accumulated
// lines.
type Renderer struct {
	attr    *TextAttr
	bullets []string
	width   int
	height  int
	compact bool

	font       uint8
	currentTag StyleTag
	fill       int
	level      int
	indents    []indentLevel

	ignoreParagraph bool
	ignoreWidth     bool
	blank           bool
	truncated       bool

	tokens Line
	lines  []Line
}

// NewRenderer returns a Renderer that wraps output at width columns.
// A non-positive width falls back to 80.
func NewRenderer(width int, opts ...Option) *Renderer {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if width <= 0 {
		width = defaultWidth
	}
	attr := NewTextAttr(cfg.encoding)
	base := 0
	if !cfg.compact {
		base = indentStep
	}
	return &Renderer{
		attr:       attr,
		bullets:    attr.Bullets(),
		width:      width,
		height:     cfg.height,
		compact:    cfg.compact,
		currentTag: StyleNormal,
		indents:    []indentLevel{{indent: base, hanging: base}},
		blank:      true,
	}
}

// Width returns the configured wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Truncated reports whether output was cut at the height bound.
func (r *Renderer) Truncated() bool {
	return r.truncated
}

// blank-line latch: Line emits a separator only when none is pending.
func (r *Renderer) setBlank()       { r.blank = true }
func (r *Renderer) content()        { r.blank = false }
func (r *Renderer) haveBlank() bool { return r.blank }

// truncate rewrites the last output line to end in the truncation marker
// and latches the renderer so no further lines are produced. ov, when
// present, is the overflow hint recorded by Fill.
func (r *Renderer) truncate(tokens Line, ov *overflow) Line {
	r.truncated = true
	markerWidth := len(truncationMarker)
	if len(tokens) > 0 && ov != nil {
		switch {
		case markerWidth == ov.available:
			// Exactly enough space for the marker.
		case markerWidth+1 <= ov.available:
			// The marker replaces the tail of the overflow word.
			word := " " + r.attr.Clip(StripMarkers(ov.word), ov.available-markerWidth-1)
			tokens = append(tokens, Run{r.currentTag, word})
		default:
			// Trim the run list until the marker fits.
			trimmed := Line{}
			available := r.width
			for _, tok := range tokens {
				width := r.attr.DisplayWidth(tok.Text)
				available -= width
				if available <= markerWidth {
					if trim := markerWidth - available; trim > 0 {
						tok.Text = r.attr.Clip(tok.Text, width-trim)
					}
					if tok.Text != "" {
						trimmed = append(trimmed, tok)
					}
					break
				}
				trimmed = append(trimmed, tok)
			}
			tokens = trimmed
		}
	}
	return append(tokens, Run{StyleTruncated, truncationMarker})
}

// newLine finalizes the current run list into the output.
func (r *Renderer) newLine(ov *overflow) {
	tokens := r.tokens
	r.tokens = nil
	if r.truncated || len(tokens) == 0 && r.compact {
		return
	}
	if len(r.lines) > 0 {
		// Delete trailing space from the previous line.
		last := r.lines[len(r.lines)-1]
		for len(last) > 0 && strings.TrimSpace(last[len(last)-1].Text) == "" {
			last = last[:len(last)-1]
		}
		r.lines[len(r.lines)-1] = last
	}
	if r.height > 0 {
		pending := 0
		if len(tokens) > 0 {
			pending = 1
		}
		if len(r.lines)+pending >= r.height {
			tokens = r.truncate(tokens, ov)
		}
	}
	r.lines = append(r.lines, tokens)
}

// mergeOrAdd merges text into the last run when the tag matches, else
// appends a new run.
func (r *Renderer) mergeOrAdd(text string, tag StyleTag) {
	last := len(r.tokens) - 1
	switch {
	case text == "":
	case last < 0 || r.tokens[last].Tag != tag:
		r.tokens = append(r.tokens, Run{tag, text})
	case tag == StyleSection:
		// A section header with no content ahead of another header.
		if leadingSpaces(r.tokens[last].Text) == leadingSpaces(text) {
			// Same depth: the empty header is superseded.
			r.tokens[last] = Run{tag, text}
		} else {
			// Different depths never share a line.
			r.newLine(nil)
			r.tokens = append(r.tokens, Run{tag, text})
		}
	default:
		r.tokens[last].Text += text
	}
}

// add appends text styled with the current tag.
func (r *Renderer) add(text string) {
	r.addTagged(text, r.currentTag)
}

// addTagged appends a styled run to the current line, splitting text at
// embedded style markers. Each marker switches the current tag for the
// remainder of the text and for subsequent add calls.
func (r *Renderer) addTagged(text string, tag StyleTag) {
	if strings.TrimSpace(text) != "" {
		r.ignoreParagraph = false
	}
	i := strings.IndexByte(text, markerByte)
	if i < 0 {
		r.mergeOrAdd(text, tag)
		return
	}
	for {
		r.mergeOrAdd(text[:i], tag)
		if i+1 >= len(text) {
			return
		}
		tag = embellishmentTag(text[i+1])
		r.currentTag = tag
		text = text[i+2:]
		i = strings.IndexByte(text, markerByte)
		if i < 0 {
			r.mergeOrAdd(text, tag)
			return
		}
	}
}

func embellishmentTag(c byte) StyleTag {
	switch c {
	case 'B':
		return StyleBold
	case 'C':
		return StyleCode
	case 'I':
		return StyleItalic
	case 'Z':
		return StyleBoldItalic
	default:
		return StyleNormal
	}
}

// addDefinition emits a definition item, splitting name=value into
// Definition, Normal and Value runs.
func (r *Renderer) addDefinition(text string) {
	text = StripMarkers(text)
	name, value, found := strings.Cut(text, "=")
	r.addTagged(name, StyleDefinition)
	if found {
		r.addTagged("=", StyleNormal)
		r.addTagged(value, StyleValue)
	}
	r.newLine(nil)
}

// flush finalizes the line a Fill sequence left in progress.
func (r *Renderer) flush() {
	r.ignoreWidth = false
	if r.fill != 0 {
		r.newLine(nil)
		r.content()
		r.fill = 0
	}
}

const noHanging = -1

// setIndent moves to the given list level. Increasing the level inherits
// the previous level's indent plus indent; hanging, unless noHanging, is
// subtracted to give the first line of an item a shorter indent:
//
//	HANGING INDENT ON THE FIRST LINE
//	   PREVAILING INDENT
//	   ON SUBSEQUENT LINES
//
// On a decrease, hanging re-derives the level's indent instead.
func (r *Renderer) setIndent(level, indent, hanging int) {
	if r.level < level {
		// The level can increase by more than 1; intervening levels get
		// the same treatment.
		for r.level < level {
			prev := r.level
			r.level++
			if r.level >= len(r.indents) {
				r.indents = append(r.indents, indentLevel{})
			}
			r.indents[r.level].indent = r.indents[prev].indent + indent
			if r.level > 1 && r.indents[prev].hanging == r.indents[prev].indent {
				// One extra column for nested indentation.
				r.indents[r.level].indent++
			}
			r.indents[r.level].hanging = r.indents[r.level].indent
			if hanging != noHanging {
				r.indents[r.level].hanging -= hanging
			}
		}
	} else {
		// Decreasing just moves the stack pointer.
		r.level = level
		if hanging != noHanging {
			r.indents[r.level].indent = r.indents[r.level].hanging + hanging
		}
	}
}

// Example emits line as an indented literal example, without wrapping.
func (r *Renderer) Example(line string) {
	r.fill = r.indents[r.level].indent + indentStep
	r.addTagged(spaces(r.fill)+line, StyleNormal)
	r.newLine(nil)
	r.content()
	r.fill = 0
}

// Fill adds a paragraph line to the output, wrapping greedily at the
// configured width. Style markers embedded in words do not count toward
// the width.
func (r *Renderer) Fill(line string) {
	r.setBlank()
	for _, word := range strings.Fields(line) {
		if r.fill == 0 {
			if r.level != 0 || !r.compact {
				r.fill = r.indents[r.level].indent - 1
			} else {
				r.level = 0
			}
			r.add(spaces(r.fill))
		}
		width := r.attr.DisplayWidth(word)
		available := r.width - r.fill
		if width+1 >= available && !r.ignoreWidth {
			r.newLine(&overflow{word: word, available: available})
			r.fill = r.indents[r.level].indent
			r.add(spaces(r.fill))
		} else {
			r.ignoreWidth = false
			if r.fill != 0 {
				r.fill++
				r.add(" ")
			}
		}
		r.fill += width
		r.add(word)
	}
}

// Finish completes the render and returns the output lines. The renderer
// must not be reused afterwards.
func (r *Renderer) Finish() []Line {
	r.flush()
	r.Font()
	return r.lines
}

// Font toggles the given font attributes and returns the style marker for
// the resulting font. With no attributes the font resets to normal. Code
// overrides bold and italic.
func (r *Renderer) Font(attrs ...FontAttr) string {
	if len(attrs) == 0 {
		r.font = 0
	} else {
		for _, attr := range attrs {
			r.font ^= 1 << attr
		}
	}
	font := r.font & (1<<FontBold | 1<<FontCode | 1<<FontItalic)
	var embellishment byte
	switch {
	case font&(1<<FontCode) != 0:
		embellishment = 'C'
	case font == 1<<FontBold|1<<FontItalic:
		embellishment = 'Z'
	case font == 1<<FontBold:
		embellishment = 'B'
	case font == 1<<FontItalic:
		embellishment = 'I'
	default:
		embellishment = 'N'
	}
	return string([]byte{markerByte, embellishment})
}

// Heading emits a section heading. Levels above 2 are indented two
// columns per level.
func (r *Renderer) Heading(level int, heading string) {
	if level == 1 && strings.HasSuffix(heading, "(1)") {
		// Ignore the man page TH line.
		return
	}
	r.flush()
	r.Line()
	r.Font()
	if level > 2 {
		indent := strings.Repeat("  ", level-2)
		r.add(indent)
		if r.compact {
			r.ignoreParagraph = true
			r.fill += len(indent)
		}
	}
	r.addTagged(heading, StyleSection)
	if r.compact {
		r.ignoreParagraph = true
		r.fill += r.attr.DisplayWidth(heading)
	} else {
		r.newLine(nil)
	}
	r.setBlank()
	r.level = 0
}

// Line emits a paragraph separator.
func (r *Renderer) Line() {
	if r.ignoreParagraph {
		return
	}
	r.flush()
	if !r.haveBlank() {
		r.setBlank()
		r.newLine(nil)
	}
}

// List emits a bullet list item at the given nesting level. Level 0
// leaves all lists. The item text follows via Fill; the first word is
// exempt from width checks so it always lands next to the bullet.
func (r *Renderer) List(level int) {
	r.flush()
	if level == 0 {
		r.level = 0
		return
	}
	indent := 4
	if level > 1 {
		indent = 2
	}
	r.setIndent(level, indent, 2)
	r.add(spaces(r.indents[level].hanging) + r.bullets[(level-1)%len(r.bullets)])
	r.fill = r.indents[level].indent + 1
	r.ignoreWidth = true
}

// Definition emits a definition list item at the given nesting level.
// An empty definition re-establishes the level's indentation and forces
// a paragraph break instead. Level 0 leaves all lists.
func (r *Renderer) Definition(level int, definition string) {
	r.flush()
	if level == 0 {
		r.level = 0
		return
	}
	if definition != "" {
		r.setIndent(level, 4, 3)
		r.add(spaces(r.indents[level].hanging))
		r.addDefinition(definition)
	} else {
		r.setIndent(level, 1, 0)
		r.Line()
	}
}

// ListEnd pops list nesting back to the given level without emitting
// content. Level 0 leaves all lists.
func (r *Renderer) ListEnd(level int) {
	r.flush()
	if level == 0 {
		r.level = 0
		return
	}
	r.setIndent(level, 0, noHanging)
}

// TableLine emits a pre-formatted table row with the given indentation.
// Column layout is the caller's responsibility.
func (r *Renderer) TableLine(line string, indent int) {
	r.add(spaces(indent) + line)
	r.newLine(nil)
}

func leadingSpaces(s string) int {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
