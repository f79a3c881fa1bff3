package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RubachokBoss/award-tracker/internal/models"
)

func readinessAward(threshold int) models.AwardDefinition {
	return models.AwardDefinition{
		Key:  "leadership",
		Name: "Leadership Excellence",
		Criteria: []string{
			"Lead with Purpose",
			"Mentor Emerging Leaders",
		},
		Keywords:  []string{"leadership", "vision", "mentor"},
		Threshold: threshold,
	}
}

func TestComputeReadiness(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("full coverage below item threshold is not ready", func(t *testing.T) {
		items := []models.AssignedItem{
			{
				ContentID:      "c1",
				Kind:           "document",
				Title:          "Leadership plan",
				AnalyzableText: "our purpose is to lead and to mentor emerging leaders",
			},
		}

		status := ComputeReadiness(readinessAward(2), items, 80, now)

		assert.Equal(t, 1, status.TotalItems)
		assert.Equal(t, 100, status.ReadinessPercentage)
		assert.False(t, status.IsReady)
	})

	t.Run("half coverage is not ready", func(t *testing.T) {
		items := []models.AssignedItem{
			{ContentID: "c1", Kind: "document", Title: "Retreat", AnalyzableText: "we lead with purpose"},
			{ContentID: "c2", Kind: "event", Title: "Games night", AnalyzableText: "board games and snacks"},
		}

		status := ComputeReadiness(readinessAward(2), items, 80, now)

		assert.Equal(t, 2, status.TotalItems)
		assert.Equal(t, 1, status.TotalDocuments)
		assert.Equal(t, 1, status.TotalEvents)
		assert.Equal(t, 50, status.ReadinessPercentage)
		assert.Equal(t, []string{"Lead with Purpose"}, status.SatisfiedCriteria)
		assert.Equal(t, []string{"Mentor Emerging Leaders"}, status.UnsatisfiedCriteria)
		assert.False(t, status.IsReady)
	})

	t.Run("both conditions met is ready", func(t *testing.T) {
		items := []models.AssignedItem{
			{ContentID: "c1", Kind: "document", Title: "Plan", AnalyzableText: "we lead with purpose"},
			{ContentID: "c2", Kind: "event", Title: "Mentoring", AnalyzableText: "officers mentor emerging leaders"},
		}

		status := ComputeReadiness(readinessAward(2), items, 80, now)

		assert.Equal(t, 100, status.ReadinessPercentage)
		assert.True(t, status.IsReady)
	})

	t.Run("override counts toward totals but not criteria", func(t *testing.T) {
		items := []models.AssignedItem{
			{
				ContentID:        "c1",
				Kind:             "document",
				Title:            "Mentoring playbook full of purpose",
				AnalyzableText:   "we lead with purpose and mentor emerging leaders",
				IsManualOverride: true,
			},
		}

		status := ComputeReadiness(readinessAward(1), items, 80, now)

		assert.Equal(t, 1, status.TotalItems)
		assert.Equal(t, 0, status.ReadinessPercentage)
		assert.Empty(t, status.SatisfiedCriteria)
		assert.False(t, status.IsReady)
	})

	t.Run("one strong item satisfies a criterion for the whole award", func(t *testing.T) {
		items := []models.AssignedItem{
			{ContentID: "c1", Kind: "event", Title: "Bake sale", AnalyzableText: "cookies"},
			{ContentID: "c2", Kind: "event", Title: "Car wash", AnalyzableText: "sponges"},
			{ContentID: "c3", Kind: "document", Title: "Vision", AnalyzableText: "we lead with purpose"},
		}

		status := ComputeReadiness(readinessAward(3), items, 80, now)

		assert.Contains(t, status.SatisfiedCriteria, "Lead with Purpose")
	})

	t.Run("idempotent over the same inputs", func(t *testing.T) {
		items := []models.AssignedItem{
			{ContentID: "c1", Kind: "document", Title: "Plan", AnalyzableText: "we lead with purpose"},
		}

		first := ComputeReadiness(readinessAward(1), items, 80, now)
		second := ComputeReadiness(readinessAward(1), items, 80, now)

		assert.Equal(t, first, second)
	})

	t.Run("no items yields an empty snapshot", func(t *testing.T) {
		status := ComputeReadiness(readinessAward(1), nil, 80, now)

		assert.Equal(t, 0, status.TotalItems)
		assert.Equal(t, 0, status.ReadinessPercentage)
		require.Len(t, status.UnsatisfiedCriteria, 2)
		assert.False(t, status.IsReady)
	})

	t.Run("percentage is rounded to nearest integer", func(t *testing.T) {
		award := models.AwardDefinition{
			Key:  "three",
			Name: "Three Criteria",
			Criteria: []string{
				"Lead with Purpose",
				"Mentor Emerging Leaders",
				"Communicate a Shared Vision",
			},
			Threshold: 1,
		}
		items := []models.AssignedItem{
			{ContentID: "c1", Kind: "document", Title: "Plan", AnalyzableText: "we lead with purpose"},
		}

		status := ComputeReadiness(award, items, 80, now)

		// 1 of 3 criteria: 33.33 rounds to 33.
		assert.Equal(t, 33, status.ReadinessPercentage)
	})
}
