package progress

import (
	"bytes"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}
	r.Start(2)
	r.Update(1, "intro.md")
	r.Update(2, "usage.md")
	r.Finish()

	want := "Rendering 2 sections\n[1/2] intro.md\n[2/2] usage.md\nRendering complete\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("NewReporter() should return a CIReporter when CI is set")
	}
}
