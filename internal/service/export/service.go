// Package export renders a user's full journal history into downloadable
// CSV, Markdown or JSON documents.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/voicejournal/voicejournal-backend/internal/domain"
)

// maxTranscriptionLength bounds transcription text in the tabular and
// narrative formats; JSON keeps it verbatim.
const maxTranscriptionLength = 500

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	ListAllAsc(ctx context.Context, userID int64) ([]domain.Entry, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements journal exports.
type Service struct {
	log     *slog.Logger
	entries entryRepo
}

// NewService creates a new Export service.
func NewService(logger *slog.Logger, entries entryRepo) *Service {
	return &Service{
		log:     logger.With("service", "export"),
		entries: entries,
	}
}

// Export renders the user's complete history, oldest first, in the given
// format. Zero entries still produce a valid document (CSV header only,
// Markdown title, JSON with an empty list).
func (s *Service) Export(ctx context.Context, userID int64, format Format) ([]byte, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("user_id", "must be positive")
	}

	entries, err := s.entries.ListAllAsc(ctx, userID)
	if err != nil {
		return nil, err
	}

	var out []byte
	switch format {
	case FormatCSV:
		out = renderCSV(entries)
	case FormatMarkdown:
		out = renderMarkdown(entries)
	case FormatJSON:
		out, err = renderJSON(entries)
		if err != nil {
			return nil, fmt.Errorf("export json: %w", err)
		}
	default:
		return nil, domain.NewValidationError("format", "unknown")
	}

	s.log.InfoContext(ctx, "export rendered",
		slog.Int64("user_id", userID),
		slog.String("format", string(format)),
		slog.Int("entries", len(entries)),
		slog.Int("bytes", len(out)),
	)

	return out, nil
}

// truncate shortens text to maxTranscriptionLength characters, replacing
// the last three with an ellipsis when it does. Length is counted in runes
// so multi-byte text is never cut mid-character.
func truncate(text string) string {
	if utf8.RuneCountInString(text) <= maxTranscriptionLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxTranscriptionLength-3]) + "..."
}
