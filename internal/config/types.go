package config

// Config is the top-level readmanual configuration, corresponding to .readmanual.yml.
type Config struct {
	Name     string      `yaml:"name" koanf:"name"`
	Language string      `yaml:"language" koanf:"language"`
	Output   string      `yaml:"output" koanf:"output"`
	Patterns []string    `yaml:"patterns" koanf:"patterns"`
	Exclude  []string    `yaml:"exclude,omitempty" koanf:"exclude"`
	Serve    ServeConfig `yaml:"serve" koanf:"serve"`
}

// ServeConfig holds settings for the local preview server.
type ServeConfig struct {
	Port int  `yaml:"port" koanf:"port"`
	Open bool `yaml:"open" koanf:"open"`
}
