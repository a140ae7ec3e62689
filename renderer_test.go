package tokfold

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lineTexts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.Text()
	}
	return out
}

func TestFillWrapsGreedily(t *testing.T) {
	r := NewRenderer(9)
	r.Fill("one two three")
	got := lineTexts(r.Finish())
	want := []string{"one two", "three"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestFillMergesAdjacentNormalRuns(t *testing.T) {
	r := NewRenderer(40)
	r.Fill("foo")
	r.Fill("bar")
	lines := r.Finish()
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d", len(lines))
	}
	want := Line{{StyleNormal, "foo bar"}}
	if diff := cmp.Diff(want, lines[0]); diff != "" {
		t.Fatalf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestFillNeverExceedsWidth(t *testing.T) {
	attr := NewTextAttr("utf-8")
	text := "the quick brown fox jumps over the lazy dog near the riverbank at dusk"
	for width := 10; width <= 60; width += 7 {
		r := NewRenderer(width)
		r.Fill(text)
		for i, line := range r.Finish() {
			if w := attr.DisplayWidth(line.Text()); w > width {
				t.Fatalf("width %d: line %d is %d columns: %q", width, i, w, line.Text())
			}
		}
	}
}

func TestFillWithInlineFontMarkers(t *testing.T) {
	r := NewRenderer(40)
	r.Fill("plain " + r.Font(FontBold) + "loud" + r.Font(FontBold) + " plain")
	lines := r.Finish()
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d", len(lines))
	}
	want := Line{
		{StyleNormal, "plain "},
		{StyleBold, "loud"},
		{StyleNormal, " plain"},
	}
	if diff := cmp.Diff(want, lines[0]); diff != "" {
		t.Fatalf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestFontMarkersDoNotCountTowardWidth(t *testing.T) {
	r := NewRenderer(9)
	r.Fill("one " + r.Font(FontCode) + "two" + r.Font(FontCode))
	lines := r.Finish()
	if len(lines) != 1 {
		t.Fatalf("markers inflated the width: got %d lines", len(lines))
	}
	if got := lines[0].Text(); got != "one two" {
		t.Fatalf("line text %q", got)
	}
}

func TestFontResolution(t *testing.T) {
	r := NewRenderer(80)
	cases := []struct {
		attrs []FontAttr
		want  byte
	}{
		{[]FontAttr{FontBold}, 'B'},
		{[]FontAttr{FontItalic}, 'Z'}, // bold still active
		{[]FontAttr{FontBold}, 'I'},
		{[]FontAttr{FontCode}, 'C'},
		{[]FontAttr{FontItalic}, 'C'}, // code overrides
		{nil, 'N'},
	}
	for i, tc := range cases {
		marker := r.Font(tc.attrs...)
		if len(marker) != 2 || marker[0] != markerByte {
			t.Fatalf("case %d: malformed marker %q", i, marker)
		}
		if marker[1] != tc.want {
			t.Fatalf("case %d: marker letter %q, want %q", i, marker[1], tc.want)
		}
	}
}

func TestFontMarkerRoundTrip(t *testing.T) {
	r := NewRenderer(80)
	text := "wide 漢字 text"
	if got := StripMarkers(r.Font(FontBold) + text); got != text {
		t.Fatalf("round trip: %q", got)
	}
	r.Font()
}

func TestDefinitionItemRuns(t *testing.T) {
	r := NewRenderer(80)
	r.Definition(1, "--flag=VALUE")
	lines := r.Finish()
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d", len(lines))
	}
	want := Line{
		{StyleNormal, " "},
		{StyleDefinition, "--flag"},
		{StyleNormal, "="},
		{StyleValue, "VALUE"},
	}
	if diff := cmp.Diff(want, lines[0]); diff != "" {
		t.Fatalf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestDefinitionWithoutValue(t *testing.T) {
	r := NewRenderer(80)
	r.Definition(1, "--quiet")
	lines := r.Finish()
	want := Line{
		{StyleNormal, " "},
		{StyleDefinition, "--quiet"},
	}
	if diff := cmp.Diff(want, lines[0]); diff != "" {
		t.Fatalf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestDefinitionBodyIndent(t *testing.T) {
	r := NewRenderer(80)
	r.Definition(1, "--flag=VALUE")
	r.Fill("flag help text")
	got := lineTexts(r.Finish())
	want := []string{" --flag=VALUE", "    flag help text"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestBulletListNesting(t *testing.T) {
	r := NewRenderer(80)
	r.List(1)
	r.Fill("one")
	r.List(2)
	r.Fill("two")
	r.ListEnd(1)
	r.List(1)
	r.Fill("three")
	got := lineTexts(r.Finish())
	want := []string{"  ▪ one", "    ◆ two", "  ▪ three"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestBulletGlyphCycle(t *testing.T) {
	r := NewRenderer(120)
	for level := 1; level <= 7; level++ {
		r.List(level)
		r.Fill("item")
	}
	lines := r.Finish()
	if len(lines) != 7 {
		t.Fatalf("want 7 lines, got %d", len(lines))
	}
	// Level 7 wraps back to the first bullet glyph.
	if !strings.Contains(lines[6].Text(), "▪") {
		t.Fatalf("level 7 bullet: %q", lines[6].Text())
	}
}

func TestBulletFirstWordIgnoresWidth(t *testing.T) {
	r := NewRenderer(6)
	r.List(1)
	r.Fill("overlongword")
	lines := r.Finish()
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d", len(lines))
	}
	if got := lines[0].Text(); got != "  ▪ overlongword" {
		t.Fatalf("line %q", got)
	}
}

func TestIndentMonotonicity(t *testing.T) {
	r := NewRenderer(120)
	prev := -1
	for level := 1; level <= 6; level++ {
		r.List(level)
		r.Fill("x")
		if got := r.indents[level].indent; got < prev {
			t.Fatalf("level %d indent %d below parent %d", level, got, prev)
		} else {
			prev = got
		}
	}
}

func TestEmptyDefinitionReestablishesIndent(t *testing.T) {
	r := NewRenderer(80)
	r.Definition(1, "--flag")
	r.Fill("help")
	r.Definition(1, "")
	r.Fill("continuation paragraph")
	lines := r.Finish()
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d", len(lines))
	}
	if got := lines[2].Text(); got != "continuation paragraph" {
		t.Fatalf("continuation line %q", got)
	}
}

func TestExampleIsLiteral(t *testing.T) {
	r := NewRenderer(10)
	r.Example("cmd --flag value that would wrap")
	lines := r.Finish()
	if len(lines) != 1 {
		t.Fatalf("example wrapped: %d lines", len(lines))
	}
	want := Line{{StyleNormal, "    cmd --flag value that would wrap"}}
	if diff := cmp.Diff(want, lines[0]); diff != "" {
		t.Fatalf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestTableLine(t *testing.T) {
	r := NewRenderer(80)
	r.TableLine("NAME   AGE", 2)
	r.TableLine("bob    42", 2)
	got := lineTexts(r.Finish())
	want := []string{"  NAME   AGE", "  bob    42"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadingCompactSharesLine(t *testing.T) {
	r := NewRenderer(80)
	r.Heading(1, "NAME")
	r.Line()
	r.Fill("widget - does things")
	lines := r.Finish()
	if len(lines) != 1 {
		t.Fatalf("want 1 line, got %d", len(lines))
	}
	want := Line{
		{StyleSection, "NAME"},
		{StyleNormal, " widget - does things"},
	}
	if diff := cmp.Diff(want, lines[0]); diff != "" {
		t.Fatalf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadingNonCompact(t *testing.T) {
	r := NewRenderer(80, WithCompact(false))
	r.Heading(1, "NAME")
	r.Fill("widget - does things")
	got := lineTexts(r.Finish())
	want := []string{"NAME", "    widget - does things"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestHeadingIgnoresManPageTH(t *testing.T) {
	r := NewRenderer(80)
	r.Heading(1, "WIDGET(1)")
	r.Heading(1, "NAME")
	r.Fill("widget")
	lines := r.Finish()
	if len(lines) != 1 || !strings.HasPrefix(lines[0].Text(), "NAME") {
		t.Fatalf("TH line leaked into output: %v", lineTexts(lines))
	}
}

func TestDeepHeadingIndent(t *testing.T) {
	r := NewRenderer(80, WithCompact(false))
	r.Heading(3, "Deep")
	got := lineTexts(r.Finish())
	want := []string{"  Deep"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLineSeparatesParagraphsNonCompact(t *testing.T) {
	r := NewRenderer(80, WithCompact(false))
	r.Fill("first")
	r.Line()
	r.Fill("second")
	got := lineTexts(r.Finish())
	want := []string{"    first", "", "    second"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestCompactSuppressesBlankLines(t *testing.T) {
	r := NewRenderer(80)
	r.Fill("first")
	r.Line()
	r.Fill("second")
	lines := r.Finish()
	for _, line := range lines {
		if line.Text() == "" {
			t.Fatalf("blank line in compact output: %v", lineTexts(lines))
		}
	}
}

func TestTrailingWhitespaceRunStripped(t *testing.T) {
	r := NewRenderer(80)
	r.addTagged("x", StyleNormal)
	r.addTagged("   ", StyleCode)
	r.newLine(nil)
	r.addTagged("y", StyleNormal)
	r.newLine(nil)
	lines := r.Finish()
	want := Line{{StyleNormal, "x"}}
	if diff := cmp.Diff(want, lines[0]); diff != "" {
		t.Fatalf("trailing run not stripped (-want +got):\n%s", diff)
	}
}

func TestEmptySectionHeaderSuperseded(t *testing.T) {
	r := NewRenderer(80)
	r.addTagged("OLD", StyleSection)
	r.addTagged("NEW", StyleSection)
	if len(r.tokens) != 1 || r.tokens[0].Text != "NEW" {
		t.Fatalf("tokens %v", r.tokens)
	}
}

func TestSectionHeadersAtDifferentDepthsSplit(t *testing.T) {
	r := NewRenderer(80)
	r.addTagged("TOP", StyleSection)
	r.addTagged("  SUB", StyleSection)
	r.newLine(nil)
	lines := r.Finish()
	got := lineTexts(lines)
	want := []string{"TOP", "  SUB"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func BenchmarkFill(b *testing.B) {
	text := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 8)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := NewRenderer(72)
		for j := 0; j < 10; j++ {
			r.Fill(text)
		}
		r.Finish()
	}
}
