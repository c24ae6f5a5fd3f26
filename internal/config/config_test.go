package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(serverAddrEnv, "")
	t.Setenv(logLevelEnv, "")
	t.Setenv(positiveWordsEnv, "")
	t.Setenv(negativeWordsEnv, "")

	cfg := Load()

	if cfg.Processing.FetchTimeout.Std() != 3*time.Second {
		t.Fatalf("unexpected fetch timeout: %v", cfg.Processing.FetchTimeout.Std())
	}
	if cfg.Processing.TokenizeTimeout.Std() != 3*time.Second {
		t.Fatalf("unexpected tokenize timeout: %v", cfg.Processing.TokenizeTimeout.Std())
	}
	if cfg.Processing.MaxConcurrency != 0 {
		t.Fatalf("expected unbounded concurrency by default, got %d", cfg.Processing.MaxConcurrency)
	}
	if cfg.Server.Address != ":8080" {
		t.Fatalf("unexpected address: %s", cfg.Server.Address)
	}
	if cfg.Server.MaxURLsPerRequest != 10 {
		t.Fatalf("unexpected url cap: %d", cfg.Server.MaxURLsPerRequest)
	}
	if cfg.Lexicon.PositiveWordsPath == "" || cfg.Lexicon.NegativeWordsPath == "" {
		t.Fatal("dictionary paths must have defaults")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
logging:
  level: debug
processing:
  fetchTimeout: 5s
  tokenizeTimeout: 1500ms
  maxConcurrency: 8
server:
  address: ":9090"
  maxUrlsPerRequest: 25
lexicon:
  watch: true
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(configPathEnv, path)
	t.Setenv(serverAddrEnv, "")
	t.Setenv(logLevelEnv, "")

	cfg := Load()

	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected level: %s", cfg.Logging.Level)
	}
	if cfg.Processing.FetchTimeout.Std() != 5*time.Second {
		t.Fatalf("unexpected fetch timeout: %v", cfg.Processing.FetchTimeout.Std())
	}
	if cfg.Processing.TokenizeTimeout.Std() != 1500*time.Millisecond {
		t.Fatalf("unexpected tokenize timeout: %v", cfg.Processing.TokenizeTimeout.Std())
	}
	if cfg.Processing.MaxConcurrency != 8 {
		t.Fatalf("unexpected concurrency cap: %d", cfg.Processing.MaxConcurrency)
	}
	if cfg.Server.Address != ":9090" || cfg.Server.MaxURLsPerRequest != 25 {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if !cfg.Lexicon.Watch {
		t.Fatal("expected watch to be enabled")
	}
	// Omitted fields keep their defaults.
	if cfg.Lexicon.PositiveWordsPath != "charged_dict/positive_words.txt" {
		t.Fatalf("unexpected positive path: %s", cfg.Lexicon.PositiveWordsPath)
	}
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  address: \":9090\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(configPathEnv, path)
	t.Setenv(serverAddrEnv, ":7070")
	t.Setenv(logLevelEnv, "error")
	t.Setenv(positiveWordsEnv, "/opt/dict/pos.txt")
	t.Setenv(negativeWordsEnv, "/opt/dict/neg.txt")

	cfg := Load()

	if cfg.Server.Address != ":7070" {
		t.Fatalf("env override lost: %s", cfg.Server.Address)
	}
	if cfg.Logging.Level != "error" {
		t.Fatalf("env override lost: %s", cfg.Logging.Level)
	}
	if cfg.Lexicon.PositiveWordsPath != "/opt/dict/pos.txt" || cfg.Lexicon.NegativeWordsPath != "/opt/dict/neg.txt" {
		t.Fatalf("dictionary env overrides lost: %+v", cfg.Lexicon)
	}
}

func TestLoadUnreadableFileFallsBackToDefaults(t *testing.T) {
	t.Setenv(configPathEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv(serverAddrEnv, "")

	cfg := Load()
	if cfg.Server.Address != ":8080" {
		t.Fatalf("expected defaults, got %s", cfg.Server.Address)
	}
}
