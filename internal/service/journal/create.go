package journal

import (
	"context"
	"log/slog"
	"strings"

	"github.com/voicejournal/voicejournal-backend/internal/domain"
)

// CreateInput holds the parameters for persisting one journal entry.
// Analysis fields are optional; an entry without them is complete.
type CreateInput struct {
	UserID               int64
	Transcription        string
	VoiceFileID          *string
	VoiceDurationSeconds *int
	Summary              *string
	MoodScore            *int
	Tags                 []string
	Sentiment            map[string]any
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "must be positive"})
	}
	if strings.TrimSpace(i.Transcription) == "" {
		errs = append(errs, domain.FieldError{Field: "transcription", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Create persists a single journal entry. The transcription is stored
// trimmed; mood score is clamped into the valid range and tags truncated to
// the configured cap even if an upstream component already did so. The repo
// assigns identity and timestamps.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Entry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	entry := &domain.Entry{
		UserID:               in.UserID,
		Transcription:        strings.TrimSpace(in.Transcription),
		VoiceFileID:          in.VoiceFileID,
		VoiceDurationSeconds: in.VoiceDurationSeconds,
		Summary:              in.Summary,
		Tags:                 in.Tags,
		Sentiment:            in.Sentiment,
	}

	if in.MoodScore != nil {
		score := domain.ClampMoodScore(*in.MoodScore)
		entry.MoodScore = &score
	}
	if len(entry.Tags) > s.maxTags {
		entry.Tags = entry.Tags[:s.maxTags]
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("entry_id", created.ID.String()),
		slog.Int64("user_id", created.UserID),
		slog.Bool("has_analysis", created.HasAnalysis()),
	)

	return created, nil
}
