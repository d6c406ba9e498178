package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DictionaryConfig configures the remote dictionary used for enrichment.
type DictionaryConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	TimeoutSecs int    `yaml:"timeout_secs"`
	Disabled    bool   `yaml:"disabled"`
}

// TokenizerConfig configures the Chinese segmenter.
type TokenizerConfig struct {
	DictPaths []string `yaml:"dict_paths,omitempty"`
}

// EnglishConfig holds switches that only apply to the English pipeline.
type EnglishConfig struct {
	Stem bool `yaml:"stem"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Language     string           `yaml:"language"`
	Top          int              `yaml:"top"`
	Output       string           `yaml:"output"`
	Stopwords    string           `yaml:"stopwords"`
	CustomFilter []string         `yaml:"custom_filter,omitempty"`
	KeepSingle   []string         `yaml:"keep_single,omitempty"`
	Dictionary   DictionaryConfig `yaml:"dictionary"`
	Tokenizer    TokenizerConfig  `yaml:"tokenizer"`
	English      EnglishConfig    `yaml:"english"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/vocab/config.yaml.
// If neither exists, it writes defaults to ~/.config/vocab/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Finalize fills remaining defaults and validates the result. Per-language
// defaults depend on the final language, so call this only after command-line
// overrides have been applied.
func (c *AppConfig) Finalize() error {
	if c.Language == "" {
		c.Language = "english"
	}
	if c.Language != "chinese" && c.Language != "english" {
		return fmt.Errorf("unknown language %q (want chinese or english)", c.Language)
	}
	if c.Top == 0 {
		c.Top = 50
	}
	if c.Output == "" {
		c.Output = "output.txt"
	}
	if c.Dictionary.TimeoutSecs < 0 {
		return fmt.Errorf("dictionary timeout_secs must not be negative, got %d", c.Dictionary.TimeoutSecs)
	}
	if c.Dictionary.TimeoutSecs == 0 {
		c.Dictionary.TimeoutSecs = 5
	}
	switch c.Language {
	case "chinese":
		if c.Stopwords == "" {
			c.Stopwords = "chinese_stopwords.txt"
		}
		if c.CustomFilter == nil {
			c.CustomFilter = []string{"这个", "那个", "可以"}
		}
		if c.Dictionary.BaseURL == "" {
			c.Dictionary.BaseURL = "https://api.openccce.com/cedict"
		}
	case "english":
		if c.CustomFilter == nil {
			c.CustomFilter = []string{"like", "get", "go"}
		}
		if c.Dictionary.BaseURL == "" {
			c.Dictionary.BaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
		}
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vocab", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Language:   "english",
		Top:        50,
		Output:     "output.txt",
		Dictionary: DictionaryConfig{TimeoutSecs: 5},
	}
	return cfg
}
