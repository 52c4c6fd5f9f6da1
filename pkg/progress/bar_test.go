package progress

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestBarHidden(t *testing.T) {
	var buf bytes.Buffer
	bar := New(&buf, false)

	bar.Start(10, "Downloading x")
	bar.SetPosition(3)
	bar.SetPosition(10)
	bar.Finish("Downloaded x to y")

	if buf.Len() != 0 {
		t.Errorf("expected hidden bar to render nothing, got %q", buf.String())
	}
	if bar.Position() != 10 || bar.Total() != 10 {
		t.Errorf("expected position/total 10/10, got %d/%d", bar.Position(), bar.Total())
	}
}

func TestBarVisible(t *testing.T) {
	var buf bytes.Buffer
	bar := New(&buf, true)

	bar.Start(10, "Downloading x")
	bar.SetPosition(10)
	bar.Finish("Downloaded x to y")

	out := buf.String()
	if !strings.Contains(out, "Downloaded x to y") {
		t.Errorf("expected finish message in output, got %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("expected final line to end with a newline, got %q", out)
	}
}

func TestBarBeforeStart(t *testing.T) {
	bar := New(nil, true)

	// Updates before Start are dropped.
	bar.SetPosition(5)
	bar.Finish("done")

	if bar.Position() != 0 {
		t.Errorf("expected position 0, got %d", bar.Position())
	}
}

func TestNewForTerminalHiddenWhenNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Fatal("expected regular file not to be a terminal")
	}

	bar := NewForTerminal(f, true)
	bar.Start(4, "Downloading x")
	bar.SetPosition(4)
	bar.Finish("Downloaded x to y")

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("expected nothing written to a non-terminal, got %d bytes", info.Size())
	}
}
