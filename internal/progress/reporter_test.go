package progress

import (
	"bytes"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}

	r.Start(2)
	r.Written(1, Page{Path: "index.html"})
	r.Written(2, Page{Path: "technologies/food.html", Tab: "Food Technology"})
	r.Finish(2)

	want := "Exporting landing page: 2 pages\n" +
		"[1/2] index.html (landing page)\n" +
		"[2/2] technologies/food.html (Food Technology tab)\n" +
		"Exported 2 of 2 pages\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestCIReporterPartialExport(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}

	r.Start(6)
	r.Finish(0)

	want := "Exporting landing page: 6 pages\nExported 0 of 6 pages\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}

func TestNewReporterInTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter().(*TerminalReporter); !ok {
		t.Error("expected TerminalReporter outside CI")
	}
}
