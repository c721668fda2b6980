// Package stats computes mood statistics over a user's journal entries for
// a date range: totals, averages, weekday breakdown, trend and top tags.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/voicejournal/voicejournal-backend/internal/domain"
)

// topTagsCap bounds the TopTags list.
const topTagsCap = 5

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	ListRangeAsc(ctx context.Context, userID int64, start, end time.Time) ([]domain.Entry, error)
	AverageMood(ctx context.Context, userID int64, start, end time.Time) (*float64, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// TagCount is one row of the top-tags ranking.
type TagCount struct {
	Tag   string
	Count int
}

// Result aggregates one period's statistics. Pointer fields are nil when
// the underlying data cannot support the figure (no scored entries, no
// prior-period baseline).
type Result struct {
	TotalEntries  int
	AvgMood       *float64
	MoodByWeekday map[string]float64
	Trend         *float64
	TopTags       []TagCount
}

// Service implements read-only mood statistics.
type Service struct {
	log     *slog.Logger
	entries entryRepo
}

// NewService creates a new Stats service.
func NewService(logger *slog.Logger, entries entryRepo) *Service {
	return &Service{
		log:     logger.With("service", "stats"),
		entries: entries,
	}
}

// Compute aggregates the user's entries with created_at in [start, end].
// It returns (nil, nil) when the range holds no entries at all. Unscored
// entries count toward TotalEntries but are excluded from every mood figure.
func (s *Service) Compute(ctx context.Context, userID int64, start, end time.Time) (*Result, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("user_id", "must be positive")
	}
	if end.Before(start) {
		return nil, domain.NewValidationError("range", "end before start")
	}

	entries, err := s.entries.ListRangeAsc(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	res := &Result{
		TotalEntries:  len(entries),
		MoodByWeekday: moodByWeekday(entries),
		TopTags:       topTags(entries),
	}

	rawAvg := meanMood(entries)
	if rawAvg != nil {
		rounded := round1(*rawAvg)
		res.AvgMood = &rounded
	}

	trend, err := s.trend(ctx, userID, start, end, rawAvg)
	if err != nil {
		return nil, err
	}
	res.Trend = trend

	s.log.DebugContext(ctx, "stats computed",
		slog.Int64("user_id", userID),
		slog.Int("entries", res.TotalEntries),
	)

	return res, nil
}

// trend compares the current period's average against the immediately
// preceding period of equal length, [start-(end-start), start), end
// exclusive so a boundary entry is counted once. Nil when either period
// lacks scored entries. cur is the unrounded current mean: only the final
// difference is rounded, so display rounding of AvgMood cannot shift the
// trend by a decimal step.
func (s *Service) trend(ctx context.Context, userID int64, start, end time.Time, cur *float64) (*float64, error) {
	if cur == nil {
		return nil, nil
	}

	prevStart := start.Add(-end.Sub(start))
	prev, err := s.entries.AverageMood(ctx, userID, prevStart, start)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, nil
	}

	diff := round1(*cur - *prev)
	return &diff, nil
}
