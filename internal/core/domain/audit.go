package domain

import "time"

// Audit is the upserted per-(local, fecha) score record. Scores are recomputed
// from the evaluations currently present, so recomputing is idempotent.
type Audit struct {
	ID          string         `json:"id"`
	Local       string         `json:"local"`
	Fecha       string         `json:"fecha"`
	Scores      map[string]int `json:"scores"`
	ScoreGlobal int            `json:"score_global"`
	ComputedAt  time.Time      `json:"computed_at"`
}

// ComputeScores maps the section-grouped statuses onto 0-100 scores.
// Each section score is the average of its item points; the global score is
// the unweighted mean of the section scores present.
func ComputeScores(bySections map[string][]Status) (map[string]int, int) {
	scores := make(map[string]int, len(bySections))
	sum := 0
	for section, statuses := range bySections {
		if len(statuses) == 0 {
			continue
		}
		points := 0
		for _, s := range statuses {
			points += s.Points()
		}
		score := int(float64(points)/float64(len(statuses)) + 0.5)
		scores[section] = score
		sum += score
	}
	if len(scores) == 0 {
		return scores, 0
	}
	global := int(float64(sum)/float64(len(scores)) + 0.5)
	return scores, global
}
