// Package tokfold lays out structural document events as width-bounded
// lines of styled token runs for terminal display.
//
// A Renderer consumes the ordered events a document driver produces —
// headings, paragraph text, bullet and definition list items, literal
// examples, command synopsis lines, table rows — and performs word
// wrapping, hanging and nested indentation, inline style tracking,
// bracket-aware synopsis splitting, and ellipsis truncation when output
// height is bounded. The result is a sequence of lines, each a sequence
// of (StyleTag, text) runs, which a sink such as Fprint maps to concrete
// styling.
//
// Core properties:
//   - Width-aware wrapping that ignores embedded style markers
//   - Hanging indents for list and definition items
//   - Synopsis lines keep [...] groups and a | b alternatives atomic
//   - Bounded height ends in a Truncated "..." run
//
// Example:
//
//	r := tokfold.NewRenderer(72, tokfold.WithHeight(20))
//	r.Heading(1, "NAME")
//	r.Fill("widget - does widget things")
//	r.Heading(1, "SYNOPSIS")
//	r.Synopsis("widget [--verbose] [--out=FILE] source")
//	lines := r.Finish()
//	if err := tokfold.Fprint(os.Stdout, lines, tokfold.DefaultTheme()); err != nil {
//		log.Fatal(err)
//	}
//
// The renderer does not parse any markup; the driver decides document
// structure and calls the event methods in order.
package tokfold
