package export

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/voicejournal/voicejournal-backend/internal/domain"
)

// renderCSV produces RFC 4180 output with every field quoted, which
// encoding/csv cannot be made to do (it quotes only when required). The
// header row is always present.
func renderCSV(entries []domain.Entry) []byte {
	var buf bytes.Buffer

	writeCSVRow(&buf, []string{"date", "time", "transcription", "summary", "mood_score", "tags"})

	for _, e := range entries {
		created := e.CreatedAt.UTC()

		summary := ""
		if e.Summary != nil {
			summary = *e.Summary
		}
		mood := ""
		if e.MoodScore != nil {
			mood = strconv.Itoa(*e.MoodScore)
		}

		writeCSVRow(&buf, []string{
			created.Format("2006-01-02"),
			created.Format("15:04"),
			truncate(e.Transcription),
			summary,
			mood,
			strings.Join(e.Tags, ","),
		})
	}

	return buf.Bytes()
}

func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteString("\r\n")
}
