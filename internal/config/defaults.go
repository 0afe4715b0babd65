package config

import "github.com/ziadkadry99/readmanual/internal/walker"

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".readmanual.yml"

// DefaultPatterns are the input patterns written to new config files.
var DefaultPatterns = walker.DefaultPatterns

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Name:     "Manual",
		Language: "en",
		Output:   "manual.html",
		Patterns: append([]string(nil), DefaultPatterns...),
		Serve: ServeConfig{
			Port: 8080,
		},
	}
}
