// Package openai implements the outbound speech-to-text and language-model
// clients on top of the OpenAI API.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/voicejournal/voicejournal-backend/internal/config"
	"github.com/voicejournal/voicejournal-backend/internal/domain"
)

// Transcriber converts raw voice audio to text via the Whisper API.
type Transcriber struct {
	client openai.Client
	model  string
	log    *slog.Logger
}

// NewTranscriber creates a Transcriber from the shared OpenAI credentials
// and transcription settings. Retries are disabled: retry policy belongs to
// the caller, and the per-request timeout comes from cfg.Timeout.
func NewTranscriber(oai config.OpenAIConfig, cfg config.TranscriptionConfig, logger *slog.Logger) *Transcriber {
	opts := []option.RequestOption{
		option.WithAPIKey(oai.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
		option.WithMaxRetries(0),
	}
	if oai.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(oai.BaseURL))
	}

	return &Transcriber{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		log:    logger.With("adapter", "transcriber"),
	}
}

// Transcribe sends the audio payload to the Whisper API and returns the
// whitespace-trimmed transcript. An empty transcript is a valid result
// ("no speech detected"), not an error.
//
// The payload is staged into a temporary file because the upstream API
// takes a named multipart upload; the file is removed on every exit path
// and cleanup failures are logged, never surfaced.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("transcribe: %w", domain.ErrEmptyInput)
	}

	tmp, err := os.CreateTemp("", "voice-*.ogg")
	if err != nil {
		return "", fmt.Errorf("transcribe: stage audio: %w", err)
	}
	defer t.cleanupTemp(ctx, tmp)

	if _, err := tmp.Write(audio); err != nil {
		return "", fmt.Errorf("transcribe: write staged audio: %w", err)
	}
	if _, err := tmp.Seek(0, 0); err != nil {
		return "", fmt.Errorf("transcribe: rewind staged audio: %w", err)
	}

	t.log.DebugContext(ctx, "transcribing audio",
		slog.Int("bytes", len(audio)),
		slog.String("model", t.model),
		slog.String("language", orAuto(language)),
	)

	params := openai.AudioTranscriptionNewParams{
		File:  tmp,
		Model: openai.AudioModel(t.model),
	}
	if language != "" {
		params.Language = openai.String(language)
	}

	resp, err := t.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		t.log.ErrorContext(ctx, "whisper request failed", slog.String("error", err.Error()))
		return "", mapAPIError(err, "transcribe")
	}

	text := strings.TrimSpace(resp.Text)
	t.log.InfoContext(ctx, "transcription successful", slog.Int("chars", len(text)))

	return text, nil
}

// cleanupTemp closes and removes the staged audio file. It never fails the
// surrounding call.
func (t *Transcriber) cleanupTemp(ctx context.Context, f *os.File) {
	name := f.Name()
	if err := f.Close(); err != nil {
		t.log.WarnContext(ctx, "close temp audio file", slog.String("path", name), slog.String("error", err.Error()))
	}
	if err := os.Remove(name); err != nil {
		t.log.WarnContext(ctx, "remove temp audio file", slog.String("path", name), slog.String("error", err.Error()))
	}
}

func orAuto(language string) string {
	if language == "" {
		return "auto"
	}
	return language
}
