package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single persisted journal record derived from one voice submission.
// Analysis fields (Summary, MoodScore, Tags) are nil when the analysis pass
// did not run or failed; the entry is still valid without them.
type Entry struct {
	ID                   uuid.UUID
	UserID               int64
	Transcription        string
	VoiceFileID          *string
	VoiceDurationSeconds *int
	Summary              *string
	MoodScore            *int
	Tags                 []string
	// Sentiment is a reserved free-form payload; no current code path
	// populates it, but it is part of the persisted shape.
	Sentiment map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasAnalysis returns true if the entry carries analysis enrichment.
func (e *Entry) HasAnalysis() bool {
	return e.Summary != nil || e.MoodScore != nil || len(e.Tags) > 0
}
