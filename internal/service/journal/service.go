// Package journal implements the entry store business logic: validated
// writes and read views over persisted journal entries.
package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/voicejournal/voicejournal-backend/internal/config"
	"github.com/voicejournal/voicejournal-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Entry, error)
	ListByDateRange(ctx context.Context, userID int64, start, end time.Time, limit, offset int) ([]domain.Entry, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the journal entry store.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	cfg     config.JournalConfig
	maxTags int
}

// NewService creates a new Journal service. maxTags caps stored tags as a
// defensive bound independent of the analyzer's own cap.
func NewService(logger *slog.Logger, entries entryRepo, cfg config.JournalConfig, maxTags int) *Service {
	return &Service{
		log:     logger.With("service", "journal"),
		entries: entries,
		cfg:     cfg,
		maxTags: maxTags,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// clampLimit ensures a page size is within [1, max], defaulting from <=0.
func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultListLimit
	}
	if limit > s.cfg.MaxListLimit {
		return s.cfg.MaxListLimit
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
