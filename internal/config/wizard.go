package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectDocsDir looks for a conventional documentation directory and returns
// a recursive pattern for it, or the default top-level patterns.
func detectDocsDir() string {
	for _, dir := range []string{"docs", "doc", "manual"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return filepath.ToSlash(filepath.Join(dir, "**", "*.md"))
		}
	}
	return strings.Join(DefaultPatterns, ", ")
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to readmanual! Let's configure your manual.")
	fmt.Println()

	defaults := DefaultConfig()

	namePrompt := promptui.Prompt{
		Label:   "Manual name",
		Default: defaults.Name,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}

	languagePrompt := promptui.Prompt{
		Label:   "Document language (e.g. en, de, pt-BR)",
		Default: defaults.Language,
		Validate: func(s string) error {
			return (&Config{Name: "x", Language: s, Output: "x"}).Validate()
		},
	}
	lang, err := languagePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("language: %w", err)
	}

	outputPrompt := promptui.Prompt{
		Label:   "Output file",
		Default: defaults.Output,
	}
	output, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	patternsPrompt := promptui.Prompt{
		Label:   "Input patterns (comma-separated globs)",
		Default: detectDocsDir(),
	}
	patternsStr, err := patternsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("input patterns: %w", err)
	}

	excludePrompt := promptui.Prompt{
		Label:   "Exclude patterns (comma-separated, leave blank for none)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}

	cfg := &Config{
		Name:     name,
		Language: lang,
		Output:   output,
		Patterns: splitAndTrim(patternsStr),
		Exclude:  splitAndTrim(excludeStr),
		Serve:    defaults.Serve,
	}
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = defaults.Patterns
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
