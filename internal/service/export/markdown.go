package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/voicejournal/voicejournal-backend/internal/domain"
)

// renderMarkdown produces a narrative document: a title, one section per
// calendar day in ascending order, and per-entry subsections with mood and
// tag annotations when present.
func renderMarkdown(entries []domain.Entry) []byte {
	lines := []string{
		"# Voice Journal Export - " + time.Now().UTC().Format("2006-01-02"),
		"",
	}

	currentDate := ""
	for _, e := range entries {
		created := e.CreatedAt.UTC()
		dateStr := created.Format("2006-01-02")

		if dateStr != currentDate {
			currentDate = dateStr
			lines = append(lines, "## "+dateStr, "")
		}

		header := []string{"### " + created.Format("15:04")}
		if e.MoodScore != nil {
			header = append(header, fmt.Sprintf("Mood: %d/10", *e.MoodScore))
		}
		if len(e.Tags) > 0 {
			tags := make([]string, len(e.Tags))
			for i, tag := range e.Tags {
				tags[i] = "#" + tag
			}
			header = append(header, "🏷 "+strings.Join(tags, " "))
		}
		lines = append(lines, strings.Join(header, " - "), "")

		lines = append(lines, "> "+truncate(e.Transcription), "")

		if e.Summary != nil && *e.Summary != "" {
			lines = append(lines, "**Summary:** "+*e.Summary, "")
		}

		lines = append(lines, "---", "")
	}

	return []byte(strings.Join(lines, "\n"))
}
