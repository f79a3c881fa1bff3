package engine

import (
	"sort"

	"github.com/RubachokBoss/award-tracker/internal/models"
)

// DefaultAcceptThreshold is the tuned minimum confidence for an automatic
// assignment. Overridable through configuration; the value is a product
// decision, not a technical one.
const DefaultAcceptThreshold = 0.2

// Assign turns per-award classification results into the ranked assignment
// list for one item: every award with confidence >= threshold, sorted
// descending by confidence. The sort is stable so ties keep taxonomy order.
// ContentID is left for the caller to fill in.
func Assign(results []models.AwardScore, threshold float64) []models.Assignment {
	if threshold <= 0 {
		threshold = DefaultAcceptThreshold
	}

	assignments := make([]models.Assignment, 0, len(results))
	for _, res := range results {
		if res.Confidence < threshold {
			continue
		}
		assignments = append(assignments, models.Assignment{
			AwardKey:          res.AwardKey,
			Confidence:        res.Confidence,
			Score:             res.Score,
			MatchedKeywords:   res.MatchedKeywords,
			SatisfiedCriteria: res.SatisfiedCriteria,
		})
	}

	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].Confidence > assignments[j].Confidence
	})

	return assignments
}

// OverrideAssignment builds the assignment row for a manual override. An
// override is a trust decision, not a scored one: confidence is pinned to 1.0
// and the matched/satisfied sets stay empty.
func OverrideAssignment(contentID, awardKey string) models.Assignment {
	return models.Assignment{
		ContentID:         contentID,
		AwardKey:          awardKey,
		Confidence:        1.0,
		Score:             0,
		MatchedKeywords:   []string{},
		SatisfiedCriteria: []string{},
		IsManualOverride:  true,
	}
}
