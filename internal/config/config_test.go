package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("OPENAI_API_KEY", "sk-test-key")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

openai:
  api_key: "sk-yaml-key"
  base_url: "http://localhost:8081/v1"

transcription:
  model: "whisper-1"
  timeout: "45s"
  max_voice_file_size_mb: 10

analysis:
  model: "gpt-4o-mini"
  min_words: 5
  timeout: "20s"
  max_tags: 3

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.Database.MaxConns != 10 {
		t.Errorf("Database.MaxConns = %d, want 10", cfg.Database.MaxConns)
	}
	if cfg.OpenAI.BaseURL != "http://localhost:8081/v1" {
		t.Errorf("OpenAI.BaseURL = %q", cfg.OpenAI.BaseURL)
	}
	if cfg.Transcription.Timeout != 45*time.Second {
		t.Errorf("Transcription.Timeout = %v, want 45s", cfg.Transcription.Timeout)
	}
	if cfg.Analysis.MinWords != 5 {
		t.Errorf("Analysis.MinWords = %d, want 5", cfg.Analysis.MinWords)
	}
	if cfg.Analysis.MaxTags != 3 {
		t.Errorf("Analysis.MaxTags = %d, want 3", cfg.Analysis.MaxTags)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_EnvOnlyWithDefaults(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	if cfg.Transcription.Model != "whisper-1" {
		t.Errorf("Transcription.Model = %q, want whisper-1", cfg.Transcription.Model)
	}
	if cfg.Analysis.Model != "gpt-4o-mini" {
		t.Errorf("Analysis.Model = %q, want gpt-4o-mini", cfg.Analysis.Model)
	}
	if cfg.Analysis.MinWords != 10 {
		t.Errorf("Analysis.MinWords = %d, want 10", cfg.Analysis.MinWords)
	}
	if cfg.Analysis.MaxTags != 5 {
		t.Errorf("Analysis.MaxTags = %d, want 5", cfg.Analysis.MaxTags)
	}
	if cfg.Transcription.MaxVoiceFileSizeMB != 20 {
		t.Errorf("MaxVoiceFileSizeMB = %d, want 20", cfg.Transcription.MaxVoiceFileSizeMB)
	}
	if cfg.Journal.DefaultListLimit != 20 || cfg.Journal.MaxListLimit != 100 {
		t.Errorf("Journal limits = %d/%d, want 20/100", cfg.Journal.DefaultListLimit, cfg.Journal.MaxListLimit)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("ANALYSIS_MIN_WORDS", "15")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}
	if cfg.Analysis.MinWords != 15 {
		t.Errorf("Analysis.MinWords = %d, want 15 (env wins)", cfg.Analysis.MinWords)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	// t.Setenv registers restoration; unset so env-required triggers.
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("OPENAI_API_KEY", "")
	os.Unsetenv("DATABASE_DSN")
	os.Unsetenv("OPENAI_API_KEY")

	if _, err := Load(); err == nil {
		t.Fatal("Load should fail without DATABASE_DSN / OPENAI_API_KEY")
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("Load should fail for an explicit missing CONFIG_PATH")
	}
}

func TestValidate_Rejections(t *testing.T) {
	base := func() *Config {
		return &Config{
			Database:      DatabaseConfig{DSN: "x", MaxConns: 10, MinConns: 2},
			OpenAI:        OpenAIConfig{APIKey: "k"},
			Transcription: TranscriptionConfig{Model: "whisper-1", Timeout: time.Minute, MaxVoiceFileSizeMB: 20},
			Analysis:      AnalysisConfig{Model: "m", MinWords: 10, Timeout: 30 * time.Second, MaxTags: 5},
			Journal:       JournalConfig{DefaultListLimit: 20, MaxListLimit: 100},
		}
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max_conns", func(c *Config) { c.Database.MaxConns = 0 }},
		{"min_conns above max", func(c *Config) { c.Database.MinConns = 11 }},
		{"zero transcription timeout", func(c *Config) { c.Transcription.Timeout = 0 }},
		{"zero voice size cap", func(c *Config) { c.Transcription.MaxVoiceFileSizeMB = 0 }},
		{"zero min words", func(c *Config) { c.Analysis.MinWords = 0 }},
		{"zero analysis timeout", func(c *Config) { c.Analysis.Timeout = 0 }},
		{"zero max tags", func(c *Config) { c.Analysis.MaxTags = 0 }},
		{"zero default list limit", func(c *Config) { c.Journal.DefaultListLimit = 0 }},
		{"max list limit below default", func(c *Config) { c.Journal.MaxListLimit = 10 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate should reject config")
			}
		})
	}
}
