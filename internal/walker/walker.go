package walker

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns select every document, stylesheet and script in the
// working directory.
var DefaultPatterns = []string{"*.md", "*.css", "*.js"}

// WalkerConfig controls input resolution.
type WalkerConfig struct {
	Patterns []string // Glob patterns, ** supported; DefaultPatterns when empty.
	Exclude  []string // Glob patterns; matching files are dropped.
}

// Resolve expands the configured patterns into a list of files. Files keep
// the order in which the patterns matched them; a file matched by several
// patterns appears once.
func Resolve(config WalkerConfig) ([]string, error) {
	patterns := config.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("walker: pattern %q: %w", pattern, err)
		}

		recursive := strings.Contains(pattern, "**")
		base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
		for _, path := range matches {
			path = filepath.Clean(path)
			if seen[path] {
				continue
			}
			// Only recursive patterns descend into default-excluded directories
			// by accident; explicit paths are honoured.
			if recursive && inExcludedDir(base, path) {
				continue
			}
			if MatchesExclude(path, config.Exclude) {
				continue
			}
			seen[path] = true
			files = append(files, path)
		}
	}
	return files, nil
}

// inExcludedDir reports whether any directory between base and path is a
// default-excluded directory.
func inExcludedDir(base, path string) bool {
	rel, err := filepath.Rel(filepath.FromSlash(base), path)
	if err != nil {
		rel = path
	}
	for _, part := range strings.Split(filepath.ToSlash(filepath.Dir(rel)), "/") {
		if shouldExcludeDir(part) {
			return true
		}
	}
	return false
}
