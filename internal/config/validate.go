package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be in [0, max_conns] (got %d)", c.Database.MinConns)
	}

	if c.Transcription.Timeout <= 0 {
		return fmt.Errorf("transcription.timeout must be > 0 (got %v)", c.Transcription.Timeout)
	}
	if c.Transcription.MaxVoiceFileSizeMB <= 0 {
		return fmt.Errorf("transcription.max_voice_file_size_mb must be > 0 (got %d)", c.Transcription.MaxVoiceFileSizeMB)
	}

	if c.Analysis.MinWords < 1 {
		return fmt.Errorf("analysis.min_words must be >= 1 (got %d)", c.Analysis.MinWords)
	}
	if c.Analysis.Timeout <= 0 {
		return fmt.Errorf("analysis.timeout must be > 0 (got %v)", c.Analysis.Timeout)
	}
	if c.Analysis.MaxTags <= 0 {
		return fmt.Errorf("analysis.max_tags must be > 0 (got %d)", c.Analysis.MaxTags)
	}

	if c.Journal.DefaultListLimit < 1 {
		return fmt.Errorf("journal.default_list_limit must be >= 1 (got %d)", c.Journal.DefaultListLimit)
	}
	if c.Journal.MaxListLimit < c.Journal.DefaultListLimit {
		return fmt.Errorf("journal.max_list_limit must be >= default_list_limit (got %d)", c.Journal.MaxListLimit)
	}

	return nil
}
