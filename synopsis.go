package tokfold

import "strings"

// Synopsis emits a NAME or SYNOPSIS line as a hanging indent. Adjacent
// spaces collapse to one, trailing space is dropped, and top-level [...]
// or (...) groups and "a | b" alternatives stay on one line when they
// fit. Style markers are skipped without counting toward the width.
func (r *Renderer) Synopsis(line string) {
	// Split the line into token, token | token, and [...] groups.
	var groups []string
	i := r.skipSpace(line, 0)
	beg := i
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ':
			end := i
			i = r.skipSpace(line, i)
			if i+1 < len(line) && line[i] == '|' && line[i+1] == ' ' {
				i = r.skipSpace(line, i+1)
			} else {
				groups = append(groups, line[beg:end])
				beg = i
			}
		case c == '[' || c == '(':
			i = r.skipNest(line, i)
		case c == markerByte:
			i = r.skipControlSequence(line, i)
		default:
			i++
		}
	}
	if beg < len(line) {
		groups = append(groups, line[beg:])
	}

	// Output the groups.
	indent := r.indents[0].indent - 1
	runningWidth := indent
	r.add(spaces(runningWidth))
	indent += indentStep
	for _, group := range groups {
		w := r.attr.DisplayWidth(group) + 1
		if runningWidth+w >= r.width {
			runningWidth = indent
			r.newLine(nil)
			r.add(spaces(runningWidth))
			if runningWidth+w >= r.width {
				// Wider than a fresh line; the group must be split.
				runningWidth = r.splitWideSynopsisGroup(group, indent, runningWidth)
				continue
			}
		}
		r.add(" " + group)
		runningWidth += w
	}
	r.newLine(nil)
	r.newLine(nil)
}

// splitWideSynopsisGroup splits a group that cannot fit on a line of its
// own. Delimiters are tried in order of visual emphasis; commas are
// preferred break points and stay attached to the preceding token. It
// returns the width of the line in progress.
func (r *Renderer) splitWideSynopsisGroup(group string, indent, runningWidth int) int {
	prevDelimiter := " "
	for group != "" {
		for _, delimiter := range []string{" | ", " : ", " ", ","} {
			part, remainder, _ := strings.Cut(group, delimiter)
			w := r.attr.DisplayWidth(part)
			if runningWidth+len(prevDelimiter)+w >= r.width ||
				prevDelimiter != "," && delimiter == "," {
				if delimiter != "," && indent+splitIndent+len(prevDelimiter)+w >= r.width {
					// The next delimiter may produce a smaller first part.
					continue
				}
				if prevDelimiter == "," {
					r.add(prevDelimiter)
					prevDelimiter = " "
				}
				if runningWidth != indent {
					runningWidth = indent + splitIndent
					r.newLine(nil)
					r.add(spaces(runningWidth))
				}
			}
			r.add(prevDelimiter + part)
			runningWidth += len(prevDelimiter) + w
			prevDelimiter = delimiter
			group = remainder
			break
		}
	}
	return runningWidth
}

// skipSpace returns the index in line after spaces starting at index.
func (r *Renderer) skipSpace(line string, index int) int {
	for index < len(line) && line[index] == ' ' {
		index++
	}
	return index
}

// skipControlSequence returns the index in line after the control
// sequence at index, advancing at least one byte.
func (r *Renderer) skipControlSequence(line string, index int) int {
	n := r.attr.ControlSequenceLen(line[index:])
	if n == 0 {
		n = 1
	}
	return index + n
}

// skipNest returns the index in line after the [...] or (...) group
// starting at index, tracking nesting depth. An unbalanced group ends at
// the end of the line.
func (r *Renderer) skipNest(line string, index int) int {
	nest := 0
	for index < len(line) {
		c := line[index]
		index++
		switch {
		case c == '[' || c == '(':
			nest++
		case c == ']' || c == ')':
			nest--
			if nest <= 0 {
				return index
			}
		case c == markerByte:
			index = r.skipControlSequence(line, index)
		}
	}
	return index
}
