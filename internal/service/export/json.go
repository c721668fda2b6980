package export

import (
	"encoding/json"
	"time"

	"github.com/voicejournal/voicejournal-backend/internal/domain"
)

type jsonDocument struct {
	ExportDate   string      `json:"export_date"`
	TotalEntries int         `json:"total_entries"`
	Entries      []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	ID                   string   `json:"id"`
	CreatedAt            string   `json:"created_at"`
	Transcription        string   `json:"transcription"`
	Summary              *string  `json:"summary"`
	MoodScore            *int     `json:"mood_score"`
	Tags                 []string `json:"tags"`
	VoiceDurationSeconds *int     `json:"voice_duration_seconds"`
}

// renderJSON produces the structured export. Transcriptions are verbatim,
// never truncated; absent analysis fields serialize as null.
func renderJSON(entries []domain.Entry) ([]byte, error) {
	doc := jsonDocument{
		ExportDate:   time.Now().UTC().Format(time.RFC3339),
		TotalEntries: len(entries),
		Entries:      make([]jsonEntry, 0, len(entries)),
	}

	for _, e := range entries {
		doc.Entries = append(doc.Entries, jsonEntry{
			ID:                   e.ID.String(),
			CreatedAt:            e.CreatedAt.UTC().Format(time.RFC3339),
			Transcription:        e.Transcription,
			Summary:              e.Summary,
			MoodScore:            e.MoodScore,
			Tags:                 e.Tags,
			VoiceDurationSeconds: e.VoiceDurationSeconds,
		})
	}

	return json.MarshalIndent(doc, "", "  ")
}
