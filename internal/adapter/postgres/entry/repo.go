// Package entry implements the journal Entry repository using PostgreSQL.
package entry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voicejournal/voicejournal-backend/internal/adapter/postgres"
	"github.com/voicejournal/voicejournal-backend/internal/domain"
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const entriesTable = "entries"

// entryColumns is the canonical column order used by every query and scan.
var entryColumns = []string{
	"id", "user_id", "transcription", "voice_file_id", "voice_duration_seconds",
	"sentiment", "summary", "mood_score", "tags", "created_at", "updated_at",
}

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns the persisted row.
// The repository owns identity and timestamps: it assigns id, created_at
// and updated_at; any values the caller set on those fields are ignored.
// The insert is a single statement, so the write is atomic.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	sqlStr, args, err := psql.Insert(entriesTable).
		Columns(entryColumns...).
		Values(
			id, e.UserID, e.Transcription, e.VoiceFileID, e.VoiceDurationSeconds,
			e.Sentiment, e.Summary, e.MoodScore, e.Tags, now, now,
		).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	created, err := scanEntry(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "entry", id.String())
	}

	return created, nil
}

// Delete removes an entry by primary key.
// Returns true if a row was removed, false if no such entry exists.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	sqlStr, args, err := psql.Delete(entriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return false, postgres.MapError(err, "entry", id.String())
	}

	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	sqlStr, args, err := selectEntries().
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	e, err := scanEntry(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "entry", id.String())
	}

	return e, nil
}

// ListByUser returns a page of the user's entries, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Entry, error) {
	qb := selectEntries().
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.queryEntries(ctx, qb)
}

// ListByDateRange returns a page of the user's entries with
// start <= created_at <= end, newest first.
func (r *Repo) ListByDateRange(ctx context.Context, userID int64, start, end time.Time, limit, offset int) ([]domain.Entry, error) {
	qb := selectEntries().
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": start}).
		Where(sq.LtOrEq{"created_at": end}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.queryEntries(ctx, qb)
}

// ListRangeAsc returns ALL entries in [start, end] in ascending created_at
// order. Used by the aggregation engine, which reduces over the full period
// snapshot and relies on ascending order for tag tie-breaking.
func (r *Repo) ListRangeAsc(ctx context.Context, userID int64, start, end time.Time) ([]domain.Entry, error) {
	qb := selectEntries().
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": start}).
		Where(sq.LtOrEq{"created_at": end}).
		OrderBy("created_at ASC", "id ASC")

	return r.queryEntries(ctx, qb)
}

// ListAllAsc returns the user's entire entry history in ascending
// created_at order. Used by the export engine.
func (r *Repo) ListAllAsc(ctx context.Context, userID int64) ([]domain.Entry, error) {
	qb := selectEntries().
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC", "id ASC")

	return r.queryEntries(ctx, qb)
}

// CountByUser returns the total number of entries for the user.
func (r *Repo) CountByUser(ctx context.Context, userID int64) (int, error) {
	sqlStr, args, err := psql.Select("count(*)").
		From(entriesTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "entry", "count")
	}

	return count, nil
}

// AverageMood returns the mean mood_score over entries with
// start <= created_at < end (end exclusive — used for the trend's
// previous-period window, which must not overlap the current one).
// Entries without a mood score are excluded; returns nil when none qualify.
func (r *Repo) AverageMood(ctx context.Context, userID int64, start, end time.Time) (*float64, error) {
	sqlStr, args, err := psql.Select("avg(mood_score)").
		From(entriesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"created_at": start}).
		Where(sq.Lt{"created_at": end}).
		Where(sq.NotEq{"mood_score": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build avg: %w", err)
	}

	var avg *float64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&avg); err != nil {
		return nil, postgres.MapError(err, "entry", "avg_mood")
	}

	return avg, nil
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

func selectEntries() sq.SelectBuilder {
	return psql.Select(entryColumns...).From(entriesTable)
}

func columnList() string {
	list := entryColumns[0]
	for _, c := range entryColumns[1:] {
		list += ", " + c
	}
	return list
}

func (r *Repo) queryEntries(ctx context.Context, qb sq.SelectBuilder) ([]domain.Entry, error) {
	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, postgres.MapError(err, "entry", "list")
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "entry", "list")
	}

	return entries, nil
}

// scanEntry reads one row in entryColumns order. jsonb columns (tags,
// sentiment) are decoded by pgx's JSON codec; NULL yields a nil slice/map.
func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var e domain.Entry
	err := row.Scan(
		&e.ID, &e.UserID, &e.Transcription, &e.VoiceFileID, &e.VoiceDurationSeconds,
		&e.Sentiment, &e.Summary, &e.MoodScore, &e.Tags, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
