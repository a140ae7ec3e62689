package tokfold

import (
	"fmt"
	"io"
)

const ansiReset = "\x1b[0m"

// Fprint writes lines to w, styling each run with the theme's ANSI prefix
// and resetting after it. Runs whose style has no prefix are written as
// plain bytes, so an all-empty theme produces clean text output.
func Fprint(w io.Writer, lines []Line, t Theme) error {
	if t == nil {
		t = DefaultTheme()
	}
	styles := t.Styles()
	for _, line := range lines {
		for _, run := range line {
			prefix := styles.For(run.Tag).Prefix
			if prefix != "" {
				if _, err := io.WriteString(w, prefix); err != nil {
					return fmt.Errorf("write style: %w", err)
				}
			}
			if _, err := io.WriteString(w, run.Text); err != nil {
				return fmt.Errorf("write run: %w", err)
			}
			if prefix != "" {
				if _, err := io.WriteString(w, ansiReset); err != nil {
					return fmt.Errorf("write reset: %w", err)
				}
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}
	return nil
}
