package engine

import (
	"math"
	"time"

	"github.com/RubachokBoss/award-tracker/internal/models"
)

// DefaultReadinessPercentage is the tuned criteria-coverage floor an award
// must reach before it can be ready.
const DefaultReadinessPercentage = 80

// ComputeReadiness recomputes the award-level rollup from the full set of
// items currently assigned to the award. A criterion is satisfied at the award
// level when any one assigned item's text satisfies it under the same
// 50%-token rule the classifier uses; one sufficiently strong item is enough.
// Manual-override items count toward the totals but are excluded from the
// criteria check: an override is presumed to satisfy nothing specific.
//
// The function is pure and idempotent; running it twice over the same inputs
// yields the same snapshot apart from LastCalculated.
func ComputeReadiness(award models.AwardDefinition, items []models.AssignedItem, minPercentage int, now time.Time) models.ReadinessStatus {
	if minPercentage <= 0 {
		minPercentage = DefaultReadinessPercentage
	}

	status := models.ReadinessStatus{
		AwardKey:            award.Key,
		SatisfiedCriteria:   []string{},
		UnsatisfiedCriteria: []string{},
		LastCalculated:      now,
	}

	texts := make([]string, 0, len(items))
	for _, item := range items {
		switch item.Kind {
		case models.ContentKindDocument.String():
			status.TotalDocuments++
		case models.ContentKindEvent.String():
			status.TotalEvents++
		}
		if !item.IsManualOverride {
			texts = append(texts, Normalize(item.Title, item.AnalyzableText))
		}
	}
	status.TotalItems = status.TotalDocuments + status.TotalEvents

	for _, criterion := range award.Criteria {
		satisfied := false
		for _, text := range texts {
			if CriterionSatisfied(text, criterion) {
				satisfied = true
				break
			}
		}
		if satisfied {
			status.SatisfiedCriteria = append(status.SatisfiedCriteria, criterion)
		} else {
			status.UnsatisfiedCriteria = append(status.UnsatisfiedCriteria, criterion)
		}
	}

	if len(award.Criteria) > 0 {
		status.ReadinessPercentage = int(math.Round(
			100 * float64(len(status.SatisfiedCriteria)) / float64(len(award.Criteria)),
		))
	}

	// Both conditions are required: quantity alone does not make an award
	// ready, and full criteria coverage with too few items does not either.
	status.IsReady = status.TotalItems >= award.Threshold &&
		status.ReadinessPercentage >= minPercentage

	return status
}
