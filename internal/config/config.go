package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv    = "JAUNDICE_CONFIG"
	serverAddrEnv    = "JAUNDICE_ADDR"
	logLevelEnv      = "JAUNDICE_LOG_LEVEL"
	positiveWordsEnv = "JAUNDICE_POSITIVE_WORDS"
	negativeWordsEnv = "JAUNDICE_NEGATIVE_WORDS"
)

// Duration wraps time.Duration so budgets can be written as "3s" in YAML.
type Duration time.Duration

// UnmarshalYAML parses Go duration syntax.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std converts back to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds high-level settings required across the application.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Lexicon    LexiconConfig    `yaml:"lexicon"`
	Processing ProcessingConfig `yaml:"processing"`
	Server     ServerConfig     `yaml:"server"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LexiconConfig points at the charged-word dictionaries.
type LexiconConfig struct {
	PositiveWordsPath string `yaml:"positiveWordsPath"`
	NegativeWordsPath string `yaml:"negativeWordsPath"`
	Watch             bool   `yaml:"watch"`
}

// Paths lists the dictionary files in load order.
func (l LexiconConfig) Paths() []string {
	return []string{l.PositiveWordsPath, l.NegativeWordsPath}
}

// ProcessingConfig carries the per-stage budgets and the optional
// concurrency cap (0 = one goroutine per job, unbounded).
type ProcessingConfig struct {
	FetchTimeout    Duration `yaml:"fetchTimeout"`
	TokenizeTimeout Duration `yaml:"tokenizeTimeout"`
	MaxConcurrency  int      `yaml:"maxConcurrency"`
}

// ServerConfig describes the HTTP surface.
type ServerConfig struct {
	Address           string `yaml:"address"`
	MaxURLsPerRequest int    `yaml:"maxUrlsPerRequest"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(serverAddrEnv); v != "" {
		c.Server.Address = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(positiveWordsEnv); v != "" {
		c.Lexicon.PositiveWordsPath = v
	}

	if v := os.Getenv(negativeWordsEnv); v != "" {
		c.Lexicon.NegativeWordsPath = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Lexicon.PositiveWordsPath != "" {
		base.Lexicon.PositiveWordsPath = override.Lexicon.PositiveWordsPath
	}
	if override.Lexicon.NegativeWordsPath != "" {
		base.Lexicon.NegativeWordsPath = override.Lexicon.NegativeWordsPath
	}
	if override.Lexicon.Watch {
		base.Lexicon.Watch = true
	}

	if override.Processing.FetchTimeout > 0 {
		base.Processing.FetchTimeout = override.Processing.FetchTimeout
	}
	if override.Processing.TokenizeTimeout > 0 {
		base.Processing.TokenizeTimeout = override.Processing.TokenizeTimeout
	}
	if override.Processing.MaxConcurrency > 0 {
		base.Processing.MaxConcurrency = override.Processing.MaxConcurrency
	}

	if override.Server.Address != "" {
		base.Server.Address = override.Server.Address
	}
	if override.Server.MaxURLsPerRequest > 0 {
		base.Server.MaxURLsPerRequest = override.Server.MaxURLsPerRequest
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Lexicon: LexiconConfig{
			PositiveWordsPath: "charged_dict/positive_words.txt",
			NegativeWordsPath: "charged_dict/negative_words.txt",
		},
		Processing: ProcessingConfig{
			FetchTimeout:    Duration(3 * time.Second),
			TokenizeTimeout: Duration(3 * time.Second),
			MaxConcurrency:  0,
		},
		Server: ServerConfig{
			Address:           ":8080",
			MaxURLsPerRequest: 10,
		},
	}
}
