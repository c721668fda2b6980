package journal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Delete removes an entry by id. It reports false when no row matched,
// which the caller may surface as "already gone" rather than an error.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.entries.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.log.InfoContext(ctx, "entry deleted", slog.String("entry_id", id.String()))
	}

	return deleted, nil
}
