package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pkt.systems/tokfold"
)

func TestResolveWidth(t *testing.T) {
	if got := resolveWidth(120); got != 120 {
		t.Fatalf("explicit width: got %d", got)
	}
	t.Setenv("COLUMNS", "66")
	if got := terminalWidth(80); got != 66 {
		t.Fatalf("COLUMNS width: got %d", got)
	}
	t.Setenv("COLUMNS", "bogus")
	if got := terminalWidth(80); got != 80 {
		t.Fatalf("fallback width: got %d", got)
	}
}

func TestResolveOutput(t *testing.T) {
	writer, closer, err := resolveOutput("")
	if err != nil {
		t.Fatalf("stdout output: %v", err)
	}
	if writer != os.Stdout || closer != nil {
		t.Fatalf("expected stdout with no closer")
	}

	path := filepath.Join(t.TempDir(), "out.txt")
	writer, closer, err = resolveOutput(path)
	if err != nil {
		t.Fatalf("file output: %v", err)
	}
	if _, err := writer.Write([]byte("hello")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(buf) != "hello" {
		t.Fatalf("unexpected file content: %q", string(buf))
	}
}

func TestSampleDocumentRenders(t *testing.T) {
	r := tokfold.NewRenderer(60)
	sampleDocument(r)
	lines := r.Finish()
	if len(lines) == 0 {
		t.Fatalf("expected output lines")
	}
	var text strings.Builder
	for _, line := range lines {
		text.WriteString(line.Text())
		text.WriteString("\n")
	}
	for _, section := range []string{"NAME", "SYNOPSIS", "FLAGS", "EXAMPLES"} {
		if !strings.Contains(text.String(), section) {
			t.Fatalf("missing %s section in output:\n%s", section, text.String())
		}
	}
	attr := tokfold.NewTextAttr("utf-8")
	for i, line := range lines {
		if w := attr.DisplayWidth(line.Text()); w > 60 {
			t.Fatalf("line %d is %d columns: %q", i, w, line.Text())
		}
	}
}
