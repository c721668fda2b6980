package domain

// Mood score bounds. Model output outside this range is clamped, not rejected.
const (
	MoodScoreMin = 1
	MoodScoreMax = 10
)

// AnalysisResult is the structured judgment produced by the language-model
// analysis pass over a transcription.
type AnalysisResult struct {
	Summary   string
	MoodScore int
	Tags      []string
}

// Normalize clamps MoodScore into [MoodScoreMin, MoodScoreMax] and truncates
// Tags to maxTags entries (prefix and order preserved). The model's schema
// adherence is never trusted, so this runs on every result regardless of
// what the transport layer validated.
func (r *AnalysisResult) Normalize(maxTags int) {
	r.MoodScore = ClampMoodScore(r.MoodScore)
	if maxTags >= 0 && len(r.Tags) > maxTags {
		r.Tags = r.Tags[:maxTags]
	}
}

// ClampMoodScore forces a mood score into the valid [1,10] range.
func ClampMoodScore(score int) int {
	if score < MoodScoreMin {
		return MoodScoreMin
	}
	if score > MoodScoreMax {
		return MoodScoreMax
	}
	return score
}
