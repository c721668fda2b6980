package stats

import (
	"math"
	"sort"

	"github.com/voicejournal/voicejournal-backend/internal/domain"
)

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// meanMood returns the unrounded mean mood over scored entries, or nil
// when no entry carries a score. The caller rounds for display; the trend
// calculation needs the raw value.
func meanMood(entries []domain.Entry) *float64 {
	var sum, n int
	for _, e := range entries {
		if e.MoodScore != nil {
			sum += *e.MoodScore
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := float64(sum) / float64(n)
	return &avg
}

// moodByWeekday averages scores per UTC weekday of created_at. Days without
// scored entries are omitted from the map.
func moodByWeekday(entries []domain.Entry) map[string]float64 {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, e := range entries {
		if e.MoodScore == nil {
			continue
		}
		day := e.CreatedAt.UTC().Weekday().String()[:3]
		sums[day] += *e.MoodScore
		counts[day]++
	}

	out := make(map[string]float64, len(sums))
	for day, sum := range sums {
		out[day] = round1(float64(sum) / float64(counts[day]))
	}
	return out
}

// topTags ranks tags by frequency, highest first. Ties resolve to the tag
// seen earlier while walking entries in ascending created_at order, so the
// ranking is stable across runs. At most topTagsCap rows.
func topTags(entries []domain.Entry) []TagCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, e := range entries {
		for _, tag := range e.Tags {
			if _, ok := counts[tag]; !ok {
				firstSeen[tag] = order
				order++
			}
			counts[tag]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	ranked := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		ranked = append(ranked, TagCount{Tag: tag, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Tag] < firstSeen[ranked[j].Tag]
	})

	if len(ranked) > topTagsCap {
		ranked = ranked[:topTagsCap]
	}
	return ranked
}
