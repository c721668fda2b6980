package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database      DatabaseConfig      `yaml:"database"`
	OpenAI        OpenAIConfig        `yaml:"openai"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Analysis      AnalysisConfig      `yaml:"analysis"`
	Journal       JournalConfig       `yaml:"journal"`
	Log           LogConfig           `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// OpenAIConfig holds credentials shared by the transcription and analysis clients.
// BaseURL overrides the default API endpoint (OpenAI-compatible gateways, tests).
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"  env:"OPENAI_API_KEY" env-required:"true"`
	BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL"`
}

// TranscriptionConfig holds speech-to-text settings.
type TranscriptionConfig struct {
	Model              string        `yaml:"model"                  env:"WHISPER_MODEL"           env-default:"whisper-1"`
	Timeout            time.Duration `yaml:"timeout"                env:"TRANSCRIPTION_TIMEOUT"   env-default:"60s"`
	MaxVoiceFileSizeMB int           `yaml:"max_voice_file_size_mb" env:"MAX_VOICE_FILE_SIZE_MB"  env-default:"20"`
}

// AnalysisConfig holds LLM analysis settings.
type AnalysisConfig struct {
	Model    string        `yaml:"model"     env:"ANALYSIS_MODEL"     env-default:"gpt-4o-mini"`
	MinWords int           `yaml:"min_words" env:"ANALYSIS_MIN_WORDS" env-default:"10"`
	Timeout  time.Duration `yaml:"timeout"   env:"ANALYSIS_TIMEOUT"   env-default:"30s"`
	MaxTags  int           `yaml:"max_tags"  env:"ANALYSIS_MAX_TAGS"  env-default:"5"`
}

// JournalConfig holds entry listing settings.
type JournalConfig struct {
	DefaultListLimit int `yaml:"default_list_limit" env:"JOURNAL_DEFAULT_LIST_LIMIT" env-default:"20"`
	MaxListLimit     int `yaml:"max_list_limit"     env:"JOURNAL_MAX_LIST_LIMIT"     env-default:"100"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
