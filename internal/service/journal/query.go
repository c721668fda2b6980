package journal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/voicejournal/voicejournal-backend/internal/domain"
)

// GetByID returns a single entry or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	return s.entries.GetByID(ctx, id)
}

// ListByUser returns the user's entries newest first. A non-positive limit
// falls back to the configured default; oversized limits are capped.
func (s *Service) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Entry, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("user_id", "must be positive")
	}
	return s.entries.ListByUser(ctx, userID, s.clampLimit(limit), clampOffset(offset))
}

// ListByDateRange returns the user's entries with created_at inside
// [start, end], newest first.
func (s *Service) ListByDateRange(ctx context.Context, userID int64, start, end time.Time, limit, offset int) ([]domain.Entry, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("user_id", "must be positive")
	}
	if end.Before(start) {
		return nil, domain.NewValidationError("range", "end before start")
	}
	return s.entries.ListByDateRange(ctx, userID, start, end, s.clampLimit(limit), clampOffset(offset))
}

// CountByUser returns the user's total number of entries.
func (s *Service) CountByUser(ctx context.Context, userID int64) (int, error) {
	if userID <= 0 {
		return 0, domain.NewValidationError("user_id", "must be positive")
	}
	return s.entries.CountByUser(ctx, userID)
}
