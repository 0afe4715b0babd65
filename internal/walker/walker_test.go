package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// writeTree creates the given files (relative to a temp dir) and returns the dir.
func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestResolve_PatternOrderAndDedup(t *testing.T) {
	dir := writeTree(t, "a.md", "b.css", "docs/e.md", "node_modules/pkg/x.md")

	files, err := Resolve(WalkerConfig{Patterns: []string{
		filepath.Join(dir, "*.md"),
		filepath.Join(dir, "*.css"),
		filepath.Join(dir, "**", "*.md"),
	}})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.css"),
		filepath.Join(dir, "docs", "e.md"),
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_ExplicitExcludedDirIsHonoured(t *testing.T) {
	dir := writeTree(t, "vendor/notes.md")

	files, err := Resolve(WalkerConfig{Patterns: []string{filepath.Join(dir, "vendor", "*.md")}})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("Resolve() = %v, want the vendor file", files)
	}
}

func TestResolve_ExcludeFilter(t *testing.T) {
	dir := writeTree(t, "a.md", "draft.md", "theme.css")

	files, err := Resolve(WalkerConfig{
		Patterns: []string{filepath.Join(dir, "*")},
		Exclude:  []string{"draft.md", "*.css"},
	})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if diff := cmp.Diff([]string{filepath.Join(dir, "a.md")}, files); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_DefaultPatterns(t *testing.T) {
	dir := writeTree(t, "guide.md", "theme.css", "app.js", "notes.txt", "sub/deep.md")
	t.Chdir(dir)

	files, err := Resolve(WalkerConfig{})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	want := []string{"guide.md", "theme.css", "app.js"}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_NoMatches(t *testing.T) {
	dir := t.TempDir()
	files, err := Resolve(WalkerConfig{Patterns: []string{filepath.Join(dir, "*.md")}})
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Resolve() = %v, want none", files)
	}
}

func TestResolve_BadPattern(t *testing.T) {
	if _, err := Resolve(WalkerConfig{Patterns: []string{"[unterminated"}}); err == nil {
		t.Error("Resolve() should reject a malformed pattern")
	}
}

func TestMatchesExclude_Empty(t *testing.T) {
	if MatchesExclude("anything.md", nil) {
		t.Error("empty exclude should match nothing")
	}
}

func TestMatchesExclude_Pattern(t *testing.T) {
	if !MatchesExclude("drafts/wip.md", []string{"drafts/**"}) {
		t.Error("drafts/wip.md should match drafts/**")
	}
	if !MatchesExclude("docs/CHANGELOG.md", []string{"CHANGELOG.md"}) {
		t.Error("base name should match")
	}
	if MatchesExclude("guide.md", []string{"*.css"}) {
		t.Error("guide.md should not match *.css")
	}
}

func TestShouldExcludeDir(t *testing.T) {
	for _, name := range []string{"node_modules", ".git", "Vendor"} {
		if !shouldExcludeDir(name) {
			t.Errorf("shouldExcludeDir(%q) = false", name)
		}
	}
	if shouldExcludeDir("docs") {
		t.Error("docs should not be excluded")
	}
}
