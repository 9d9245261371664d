package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/valpere/kospell/internal/speller"
	"github.com/valpere/kospell/internal/translator"
)

func mustNew(t *testing.T) *viper.Viper {
	t.Helper()
	v, err := New()
	if err != nil {
		t.Fatalf("failed to create config: %v", err)
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DEEPL_API_KEY", "")
	t.Setenv("KOSPELL_DEEPL_API_KEY", "")

	cfg, err := Load(mustNew(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DeepL.BaseURL != translator.DefaultDeepLURL {
		t.Errorf("expected default DeepL URL, got %q", cfg.DeepL.BaseURL)
	}
	if cfg.Speller.URL != speller.DefaultNaverURL {
		t.Errorf("expected default speller URL, got %q", cfg.Speller.URL)
	}
	if cfg.HTTP.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.HTTP.Timeout)
	}
	if cfg.DeepL.Timeout != 30*time.Second {
		t.Errorf("expected DeepL timeout to follow http.timeout, got %v", cfg.DeepL.Timeout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected info level, got %q", cfg.Log.Level)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("KOSPELL_DEEPL_API_KEY", "")
	t.Setenv("DEEPL_API_KEY", "plain-key:fx")
	t.Setenv("KOSPELL_SPELLER_PASSPORT_KEY", "passport")
	t.Setenv("KOSPELL_HTTP_TIMEOUT", "5s")

	cfg, err := Load(mustNew(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DeepL.APIKey != "plain-key:fx" {
		t.Errorf("expected DEEPL_API_KEY to be used, got %q", cfg.DeepL.APIKey)
	}
	if cfg.Speller.PassportKey != "passport" {
		t.Errorf("expected passport key from env, got %q", cfg.Speller.PassportKey)
	}
	if cfg.HTTP.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.HTTP.Timeout)
	}
}

func TestLoad_PrefixedKeyWins(t *testing.T) {
	t.Setenv("KOSPELL_DEEPL_API_KEY", "prefixed")
	t.Setenv("DEEPL_API_KEY", "plain")

	cfg, err := Load(mustNew(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DeepL.APIKey != "prefixed" {
		t.Errorf("expected prefixed key, got %q", cfg.DeepL.APIKey)
	}
}

func TestReadFile(t *testing.T) {
	t.Setenv("DEEPL_API_KEY", "")
	t.Setenv("KOSPELL_DEEPL_API_KEY", "")

	path := filepath.Join(t.TempDir(), "kospell.yaml")
	content := "deepl:\n  api_key: file-key\n  url: https://api.deepl.com/v2/translate\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	v := mustNew(t)
	if err := ReadFile(v, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DeepL.APIKey != "file-key" {
		t.Errorf("expected key from file, got %q", cfg.DeepL.APIKey)
	}
	if cfg.DeepL.BaseURL != "https://api.deepl.com/v2/translate" {
		t.Errorf("expected pro URL from file, got %q", cfg.DeepL.BaseURL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Log.Level)
	}
}

func TestReadFile_Missing(t *testing.T) {
	v := mustNew(t)
	if err := ReadFile(v, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for an explicit missing config file")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("expected missing .env to be ignored, got %v", err)
	}

	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("KOSPELL_TEST_DOTENV=loaded\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("KOSPELL_TEST_DOTENV") })

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("KOSPELL_TEST_DOTENV"); got != "loaded" {
		t.Errorf("expected variable from .env, got %q", got)
	}
}
