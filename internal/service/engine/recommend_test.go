package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RubachokBoss/award-tracker/internal/models"
)

func TestRecommend(t *testing.T) {
	award := models.AwardDefinition{
		Key:  "leadership",
		Name: "Leadership Excellence",
		Criteria: []string{
			"Lead with Purpose",
			"Mentor Emerging Leaders",
		},
		Threshold: 3,
	}

	t.Run("ready award yields no recommendations", func(t *testing.T) {
		status := models.ReadinessStatus{
			AwardKey: "leadership",
			IsReady:  true,
		}

		assert.Empty(t, Recommend(award, status))
	})

	t.Run("quantity shortfall ranks first", func(t *testing.T) {
		status := models.ReadinessStatus{
			AwardKey:            "leadership",
			TotalItems:          1,
			UnsatisfiedCriteria: []string{"Mentor Emerging Leaders"},
		}

		recs := Recommend(award, status)

		require.Len(t, recs, 2)
		assert.Equal(t, models.RecommendationTypeQuantity, recs[0].Type)
		assert.Equal(t, models.RecommendationPriorityHigh, recs[0].Priority)
		assert.Contains(t, recs[0].Message, "2 more content items")
		assert.Equal(t, models.RecommendationTypeCriteria, recs[1].Type)
		assert.Equal(t, models.RecommendationPriorityMedium, recs[1].Priority)
	})

	t.Run("known criterion gets its curated suggestion", func(t *testing.T) {
		status := models.ReadinessStatus{
			AwardKey:            "leadership",
			TotalItems:          3,
			UnsatisfiedCriteria: []string{"Mentor Emerging Leaders"},
		}

		recs := Recommend(award, status)

		require.Len(t, recs, 1)
		assert.Contains(t, recs[0].Suggestion, "mentorship")
	})

	t.Run("unknown criterion falls back to generic suggestion", func(t *testing.T) {
		status := models.ReadinessStatus{
			AwardKey:            "leadership",
			TotalItems:          3,
			UnsatisfiedCriteria: []string{"Publish a Club History"},
		}

		recs := Recommend(award, status)

		require.Len(t, recs, 1)
		assert.Contains(t, recs[0].Suggestion, "publish a club history")
	})

	t.Run("singular noun for a shortfall of one", func(t *testing.T) {
		status := models.ReadinessStatus{
			AwardKey:   "leadership",
			TotalItems: 2,
		}

		recs := Recommend(award, status)

		require.Len(t, recs, 1)
		assert.Contains(t, recs[0].Message, "1 more content item ")
	})
}
