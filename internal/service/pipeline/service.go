// Package pipeline orchestrates one voice event end to end: transcription,
// optional analysis, and a single durable write.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/voicejournal/voicejournal-backend/internal/config"
	"github.com/voicejournal/voicejournal-backend/internal/domain"
	"github.com/voicejournal/voicejournal-backend/internal/service/journal"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type transcriber interface {
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}

type analyzer interface {
	Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error)
}

type entryCreator interface {
	Create(ctx context.Context, in journal.CreateInput) (*domain.Entry, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Input describes one incoming voice event.
type Input struct {
	UserID          int64
	Audio           []byte
	Language        string
	VoiceFileID     *string
	DurationSeconds *int
}

// Service implements the voice event pipeline.
type Service struct {
	log          *slog.Logger
	transcriber  transcriber
	analyzer     analyzer
	entries      entryCreator
	maxVoiceSize int
}

// NewService creates a new Pipeline service.
func NewService(logger *slog.Logger, t transcriber, a analyzer, entries entryCreator, cfg config.TranscriptionConfig) *Service {
	return &Service{
		log:          logger.With("service", "pipeline"),
		transcriber:  t,
		analyzer:     a,
		entries:      entries,
		maxVoiceSize: cfg.MaxVoiceFileSizeMB * 1024 * 1024,
	}
}

// ProcessVoice runs one voice event through transcribe, analyze and persist.
// A transcription failure aborts the event. An empty transcript means no
// speech was detected: no entry is written and no error returned. Analysis
// failures are logged and the entry is persisted without analysis fields;
// the transcription is the primary value. Exactly one write per event.
func (s *Service) ProcessVoice(ctx context.Context, in Input) (*domain.Entry, error) {
	if len(in.Audio) > s.maxVoiceSize {
		return nil, domain.NewValidationError("audio",
			fmt.Sprintf("too large (%d bytes, max %d)", len(in.Audio), s.maxVoiceSize))
	}

	text, err := s.transcriber.Transcribe(ctx, in.Audio, in.Language)
	if err != nil {
		return nil, fmt.Errorf("process voice: %w", err)
	}
	if text == "" {
		s.log.InfoContext(ctx, "no speech detected", slog.Int64("user_id", in.UserID))
		return nil, nil
	}

	create := journal.CreateInput{
		UserID:               in.UserID,
		Transcription:        text,
		VoiceFileID:          in.VoiceFileID,
		VoiceDurationSeconds: in.DurationSeconds,
	}

	analysis, err := s.analyzer.Analyze(ctx, text)
	switch {
	case err != nil:
		s.log.WarnContext(ctx, "analysis failed, saving entry without it",
			slog.Int64("user_id", in.UserID),
			slog.String("error", err.Error()),
		)
	case analysis != nil:
		create.Summary = &analysis.Summary
		create.MoodScore = &analysis.MoodScore
		create.Tags = analysis.Tags
	}

	entry, err := s.entries.Create(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("process voice: %w", err)
	}

	return entry, nil
}
