package tokfold

import (
	"sort"
	"strings"

	"pkt.systems/tokfold/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence. An empty
// prefix renders plain text.
type Style struct {
	Prefix string
}

// Styles maps each StyleTag to a concrete style.
type Styles struct {
	Normal     Style
	Bold       Style
	Italic     Style
	BoldItalic Style
	Code       Style
	Section    Style
	Definition Style
	Value      Style
	Truncated  Style
}

// For returns the style for tag.
func (s Styles) For(tag StyleTag) Style {
	switch tag {
	case StyleBold:
		return s.Bold
	case StyleItalic:
		return s.Italic
	case StyleBoldItalic:
		return s.BoldItalic
	case StyleCode:
		return s.Code
	case StyleSection:
		return s.Section
	case StyleDefinition:
		return s.Definition
	case StyleValue:
		return s.Value
	case StyleTruncated:
		return s.Truncated
	default:
		return s.Normal
	}
}

// Theme provides named styles for rendering styled token lines.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Normal:     style(p.Text),
		Bold:       style(palette.Bold, p.Text),
		Italic:     style(palette.Italic, p.Text),
		BoldItalic: style(palette.Bold, palette.Italic, p.Text),
		Code:       style(p.Code),
		Section:    style(palette.Bold, p.Section),
		Definition: style(p.Definition),
		Value:      style(palette.Italic, p.Value),
		Truncated:  style(palette.Dim, p.Truncated),
	}
}

var builtinThemes = map[string]Theme{
	"default":         theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":         theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteDoomGruvbox)},
	"dracula":         theme{name: "dracula", styles: stylesFromPalette(palette.PaletteDoomDracula)},
	"nord":            theme{name: "nord", styles: stylesFromPalette(palette.PaletteDoomNord)},
	"solarized-dark":  theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"solarized-light": theme{name: "solarized-light", styles: stylesFromPalette(palette.PaletteSolarizedLight)},
	"github-dark":     theme{name: "github-dark", styles: stylesFromPalette(palette.PaletteGithubDark)},
	"github-light":    theme{name: "github-light", styles: stylesFromPalette(palette.PaletteGithubLight)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
