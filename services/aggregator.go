package services

import (
	"math"

	"github.com/crisvieira/satisfaction-server/models"
)

// NPSStats is the aggregate view of all NPS responses. Recomputed from
// the full record set on every call so it can never drift from the
// store.
type NPSStats struct {
	Total        int            `json:"total"`
	AverageScore float64        `json:"average_score"`
	Distribution map[int]int    `json:"distribution"` // every score 0-10, zero-filled
	Promoters    int            `json:"promoters"`
	Neutrals     int            `json:"neutrals"`
	Detractors   int            `json:"detractors"`
	PromoterPct  float64        `json:"promoter_pct"`
	NeutralPct   float64        `json:"neutral_pct"`
	DetractorPct float64        `json:"detractor_pct"`
	NPSScore     float64        `json:"nps_score"` // (promoters - detractors) / total * 100
	ByBranch     map[string]int `json:"by_branch"`
}

// CSATStats is the aggregate view of all CSAT responses.
type CSATStats struct {
	Total               int            `json:"total"`
	AverageScore        float64        `json:"average_score"`
	Distribution        map[int]int    `json:"distribution"`      // every rating 1-5, zero-filled
	Labels              map[int]string `json:"labels"`            // rating -> display label
	HighSatisfaction    int            `json:"high_satisfaction"` // ratings 4 and 5
	ContextDistribution map[string]int `json:"context_distribution"`
}

// ComputeNPSStats derives NPS aggregates from the given records.
// Non-NPS records are ignored, so passing the full set is fine.
func ComputeNPSStats(records []models.SurveyResponse) NPSStats {
	stats := NPSStats{
		Distribution: make(map[int]int, 11),
		ByBranch:     map[string]int{},
	}
	for s := 0; s <= 10; s++ {
		stats.Distribution[s] = 0
	}

	sum := 0
	for _, r := range records {
		if r.Instrument != models.InstrumentNPS {
			continue
		}
		stats.Total++
		sum += r.Score
		stats.Distribution[r.Score]++
		switch r.Category {
		case models.CategoryPromoter:
			stats.Promoters++
		case models.CategoryDetractor:
			stats.Detractors++
		default:
			stats.Neutrals++
		}
		if r.ContextTag != "" {
			stats.ByBranch[r.ContextTag]++
		}
	}

	if stats.Total == 0 {
		return stats
	}

	total := float64(stats.Total)
	stats.AverageScore = round1(float64(sum) / total)
	stats.PromoterPct = round2(float64(stats.Promoters) / total * 100)
	stats.NeutralPct = round2(float64(stats.Neutrals) / total * 100)
	stats.DetractorPct = round2(float64(stats.Detractors) / total * 100)
	stats.NPSScore = round2(float64(stats.Promoters-stats.Detractors) / total * 100)
	return stats
}

// ComputeCSATStats derives CSAT aggregates from the given records.
func ComputeCSATStats(records []models.SurveyResponse) CSATStats {
	stats := CSATStats{
		Distribution:        make(map[int]int, 5),
		Labels:              make(map[int]string, 5),
		ContextDistribution: map[string]int{},
	}
	for s := 1; s <= 5; s++ {
		stats.Distribution[s] = 0
		stats.Labels[s] = CSATLabel(s)
	}

	sum := 0
	for _, r := range records {
		if r.Instrument != models.InstrumentCSAT {
			continue
		}
		stats.Total++
		sum += r.Score
		stats.Distribution[r.Score]++
		if r.Score >= 4 {
			stats.HighSatisfaction++
		}
		context := r.ContextTag
		if context == "" {
			context = "unspecified"
		}
		stats.ContextDistribution[context]++
	}

	if stats.Total > 0 {
		stats.AverageScore = round1(float64(sum) / float64(stats.Total))
	}
	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
