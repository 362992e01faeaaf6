package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigYAML = `# crossword server configuration
port: "8080"

# Word lists per language code. words_file lines are "WORD: hint" or a bare
# word; hints_file is an optional JSON object of lowercase word -> hint
# overrides.
languages:
  fi:
    words_file: words/finnish_words.txt
    hints_file: words/finnish_hints.json
  "no":
    words_file: words/norwegian_words.txt

generator:
  max_words: 20
  max_consecutive_skips: 10
  min_words: 2
  max_pool_size: 100
  # How many times a failed generation is retried with a derived seed
  # before the request gives up.
  max_attempts: 3
`

// LanguageConfig points at the word material for one language code.
type LanguageConfig struct {
	WordsFile string `yaml:"words_file"`
	HintsFile string `yaml:"hints_file,omitempty"`
}

// GeneratorConfig carries the engine tuning knobs. Zero fields fall back to
// the engine defaults.
type GeneratorConfig struct {
	MaxWords            int `yaml:"max_words"`
	MaxConsecutiveSkips int `yaml:"max_consecutive_skips"`
	MinWords            int `yaml:"min_words"`
	MaxPoolSize         int `yaml:"max_pool_size"`
	MaxAttempts         int `yaml:"max_attempts"`
}

// Config models the server configuration file.
type Config struct {
	Port      string                    `yaml:"port"`
	Languages map[string]LanguageConfig `yaml:"languages"`
	Generator GeneratorConfig           `yaml:"generator"`
}

// DefaultConfig returns the configuration embedded above.
func DefaultConfig() *Config {
	cfg := &Config{}
	// The embedded default is compiled in; a parse failure is a programming
	// error caught by the config tests.
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), cfg); err != nil {
		panic(fmt.Sprintf("default config: %v", err))
	}
	return cfg
}

// LoadConfig reads a YAML config file on top of the defaults. A missing file
// is not an error: the defaults are returned as-is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Generator.MaxAttempts <= 0 {
		cfg.Generator.MaxAttempts = 3
	}
	return cfg, nil
}

// options converts the config knobs into engine options for one generation.
func (c GeneratorConfig) options(alphabet Alphabet, seed int64) Options {
	return Options{
		Alphabet:            alphabet,
		Seed:                seed,
		MaxWords:            c.MaxWords,
		MaxConsecutiveSkips: c.MaxConsecutiveSkips,
		MinWords:            c.MinWords,
		MaxPoolSize:         c.MaxPoolSize,
	}
}
