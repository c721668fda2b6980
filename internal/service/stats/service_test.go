package stats

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicejournal/voicejournal-backend/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockEntryRepo struct {
	ListRangeAscFunc func(ctx context.Context, userID int64, start, end time.Time) ([]domain.Entry, error)
	AverageMoodFunc  func(ctx context.Context, userID int64, start, end time.Time) (*float64, error)
}

func (m *mockEntryRepo) ListRangeAsc(ctx context.Context, userID int64, start, end time.Time) ([]domain.Entry, error) {
	if m.ListRangeAscFunc != nil {
		return m.ListRangeAscFunc(ctx, userID, start, end)
	}
	return nil, nil
}

func (m *mockEntryRepo) AverageMood(ctx context.Context, userID int64, start, end time.Time) (*float64, error) {
	if m.AverageMoodFunc != nil {
		return m.AverageMoodFunc(ctx, userID, start, end)
	}
	return nil, nil
}

func newTestService(repo *mockEntryRepo) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, repo)
}

func intPtr(v int) *int         { return &v }
func fPtr(v float64) *float64   { return &v }
func day(d int) time.Time       { return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC) }
func scored(d, mood int) domain.Entry {
	return domain.Entry{MoodScore: intPtr(mood), CreatedAt: day(d)}
}

var (
	rangeStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd   = time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
)

// ===========================================================================
// Compute
// ===========================================================================

func TestCompute_EmptyRange(t *testing.T) {
	svc := newTestService(&mockEntryRepo{})

	res, err := svc.Compute(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)
	assert.Nil(t, res, "empty range must yield no result, not a zeroed one")
}

func TestCompute_AverageMood(t *testing.T) {
	entries := []domain.Entry{
		scored(1, 6), scored(2, 7), scored(3, 8), scored(4, 5), scored(5, 9),
	}
	svc := newTestService(&mockEntryRepo{
		ListRangeAscFunc: func(ctx context.Context, userID int64, start, end time.Time) ([]domain.Entry, error) {
			return entries, nil
		},
	})

	res, err := svc.Compute(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 5, res.TotalEntries)
	require.NotNil(t, res.AvgMood)
	assert.Equal(t, 7.0, *res.AvgMood)
}

func TestCompute_UnscoredEntriesCountedButExcludedFromMood(t *testing.T) {
	entries := []domain.Entry{
		scored(1, 8),
		{CreatedAt: day(2)}, // no analysis
		scored(3, 6),
	}
	svc := newTestService(&mockEntryRepo{
		ListRangeAscFunc: func(ctx context.Context, userID int64, start, end time.Time) ([]domain.Entry, error) {
			return entries, nil
		},
	})

	res, err := svc.Compute(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalEntries)
	require.NotNil(t, res.AvgMood)
	assert.Equal(t, 7.0, *res.AvgMood)
}

func TestCompute_NoScoredEntries(t *testing.T) {
	entries := []domain.Entry{{CreatedAt: day(1)}, {CreatedAt: day(2)}}
	svc := newTestService(&mockEntryRepo{
		ListRangeAscFunc: func(ctx context.Context, userID int64, start, end time.Time) ([]domain.Entry, error) {
			return entries, nil
		},
		AverageMoodFunc: func(ctx context.Context, userID int64, start, end time.Time) (*float64, error) {
			t.Fatal("trend lookup must be skipped when current average is nil")
			return nil, nil
		},
	})

	res, err := svc.Compute(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)

	assert.Equal(t, 2, res.TotalEntries)
	assert.Nil(t, res.AvgMood)
	assert.Nil(t, res.Trend)
	assert.Empty(t, res.MoodByWeekday)
}

func TestCompute_MoodByWeekday(t *testing.T) {
	// 2024-03-04 is a Monday, 2024-03-06 a Wednesday.
	entries := []domain.Entry{
		scored(4, 6), scored(4, 8), // Mon avg 7.0
		scored(6, 5),               // Wed avg 5.0
		{CreatedAt: day(5)},        // Tue unscored, omitted
	}
	svc := newTestService(&mockEntryRepo{
		ListRangeAscFunc: func(ctx context.Context, userID int64, start, end time.Time) ([]domain.Entry, error) {
			return entries, nil
		},
	})

	res, err := svc.Compute(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{"Mon": 7.0, "Wed": 5.0}, res.MoodByWeekday)
}

func TestCompute_TopTags(t *testing.T) {
	tagged := func(d int, tags ...string) domain.Entry {
		return domain.Entry{Tags: tags, CreatedAt: day(d)}
	}
	entries := []domain.Entry{
		tagged(1, "work", "ideas"),
		tagged(2, "work"),
		tagged(3, "rest", "work"),
		tagged(4, "ideas"),
	}
	svc := newTestService(&mockEntryRepo{
		ListRangeAscFunc: func(ctx context.Context, userID int64, start, end time.Time) ([]domain.Entry, error) {
			return entries, nil
		},
	})

	res, err := svc.Compute(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)

	want := []TagCount{{"work", 3}, {"ideas", 2}, {"rest", 1}}
	assert.Equal(t, want, res.TopTags)
}

func TestCompute_TopTags_TieBreakAndCap(t *testing.T) {
	tagged := func(d int, tags ...string) domain.Entry {
		return domain.Entry{Tags: tags, CreatedAt: day(d)}
	}
	// Six distinct tags, all count 1: ranking keeps encounter order, cap 5.
	entries := []domain.Entry{
		tagged(1, "a", "b"),
		tagged(2, "c", "d"),
		tagged(3, "e", "f"),
	}
	svc := newTestService(&mockEntryRepo{
		ListRangeAscFunc: func(ctx context.Context, userID int64, start, end time.Time) ([]domain.Entry, error) {
			return entries, nil
		},
	})

	res, err := svc.Compute(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)

	want := []TagCount{{"a", 1}, {"b", 1}, {"c", 1}, {"d", 1}, {"e", 1}}
	assert.Equal(t, want, res.TopTags)
}

// ===========================================================================
// Trend
// ===========================================================================

func TestCompute_Trend(t *testing.T) {
	entries := []domain.Entry{scored(10, 7)}

	var gotPrevStart, gotPrevEnd time.Time
	svc := newTestService(&mockEntryRepo{
		ListRangeAscFunc: func(ctx context.Context, userID int64, start, end time.Time) ([]domain.Entry, error) {
			return entries, nil
		},
		AverageMoodFunc: func(ctx context.Context, userID int64, start, end time.Time) (*float64, error) {
			gotPrevStart, gotPrevEnd = start, end
			return fPtr(6.5), nil
		},
	})

	res, err := svc.Compute(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)

	require.NotNil(t, res.Trend)
	assert.Equal(t, 0.5, *res.Trend)

	// Previous window mirrors the current one, ending where it starts.
	assert.Equal(t, rangeStart, gotPrevEnd)
	assert.Equal(t, rangeStart.Add(-rangeEnd.Sub(rangeStart)), gotPrevStart)
}

func TestCompute_TrendUsesUnroundedAverage(t *testing.T) {
	// Raw mean 20/3 = 6.666... displays as 6.7, but against a 6.65 baseline
	// the trend is round(6.666-6.65) = 0.0, not round(6.7-6.65) = 0.1.
	entries := []domain.Entry{scored(1, 6), scored(2, 7), scored(3, 7)}
	svc := newTestService(&mockEntryRepo{
		ListRangeAscFunc: func(ctx context.Context, userID int64, start, end time.Time) ([]domain.Entry, error) {
			return entries, nil
		},
		AverageMoodFunc: func(ctx context.Context, userID int64, start, end time.Time) (*float64, error) {
			return fPtr(6.65), nil
		},
	})

	res, err := svc.Compute(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)

	require.NotNil(t, res.AvgMood)
	assert.Equal(t, 6.7, *res.AvgMood)
	require.NotNil(t, res.Trend)
	assert.Equal(t, 0.0, *res.Trend)
}

func TestCompute_Trend_NoBaseline(t *testing.T) {
	svc := newTestService(&mockEntryRepo{
		ListRangeAscFunc: func(ctx context.Context, userID int64, start, end time.Time) ([]domain.Entry, error) {
			return []domain.Entry{scored(10, 7)}, nil
		},
	})

	res, err := svc.Compute(context.Background(), 1, rangeStart, rangeEnd)
	require.NoError(t, err)
	assert.Nil(t, res.Trend)
}

func TestCompute_Validation(t *testing.T) {
	svc := newTestService(&mockEntryRepo{})

	_, err := svc.Compute(context.Background(), 0, rangeStart, rangeEnd)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Compute(context.Background(), 1, rangeEnd, rangeStart)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
