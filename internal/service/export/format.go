package export

import (
	"strings"
	"time"
)

// Format is an export output format token.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
)

// ParseFormat maps a user-supplied format string to a Format. Matching is
// case-insensitive and ignores surrounding whitespace; an empty string
// selects CSV. "markdown" is accepted as a synonym for "md". Unknown
// strings report ok=false.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, true
	case "md", "markdown":
		return FormatMarkdown, true
	case "json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// Filename returns the suggested attachment name for an export produced
// today, e.g. "voice_journal_2024-03-15.csv".
func Filename(f Format) string {
	return "voice_journal_" + time.Now().UTC().Format("2006-01-02") + "." + string(f)
}
