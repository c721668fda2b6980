package testhelper

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/voicejournal/voicejournal-backend/internal/domain"
)

// UniqueUserID returns a random positive user id so parallel tests
// never observe each other's entries.
func UniqueUserID() int64 {
	return rand.Int63n(1_000_000_000) + 1
}

// SeedEntry inserts an entry directly, bypassing the repository, with the
// given creation time. Analysis fields are taken from the passed entry;
// nil fields are stored as NULL.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, e domain.Entry, createdAt time.Time) domain.Entry {
	t.Helper()
	ctx := context.Background()

	e.ID = uuid.New()
	e.CreatedAt = createdAt.UTC().Truncate(time.Microsecond)
	e.UpdatedAt = e.CreatedAt
	if e.Transcription == "" {
		e.Transcription = "seeded entry " + e.ID.String()[:8]
	}

	var tagsJSON any
	if e.Tags != nil {
		b, err := json.Marshal(e.Tags)
		if err != nil {
			t.Fatalf("testhelper: SeedEntry marshal tags: %v", err)
		}
		tagsJSON = b
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO entries (id, user_id, transcription, voice_file_id, voice_duration_seconds,
		                      sentiment, summary, mood_score, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.UserID, e.Transcription, e.VoiceFileID, e.VoiceDurationSeconds,
		e.Sentiment, e.Summary, e.MoodScore, tagsJSON, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert: %v", err)
	}

	return e
}
