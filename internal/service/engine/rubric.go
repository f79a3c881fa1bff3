package engine

import (
	"strings"

	"github.com/RubachokBoss/award-tracker/internal/models"
)

// RubricClassifier is the legacy weighted rubric kept as an alternate strategy
// behind the same interface. It weights multi-word phrase hits above single
// keyword hits and gates confidence on a minimum share of satisfied criteria
// (three of five in the original rubric). Its thresholds were tuned
// independently of the linear formula and must not be mixed with it.
type RubricClassifier struct {
	PhraseWeight      float64
	KeywordWeight     float64
	CriterionWeight   float64
	ConfidenceDivisor float64
	// MinCriteriaShare is the share of award criteria that must be satisfied
	// before the rubric reports any confidence at all.
	MinCriteriaShare float64
}

func NewRubricClassifier() *RubricClassifier {
	return &RubricClassifier{
		PhraseWeight:      3.0,
		KeywordWeight:     1.0,
		CriterionWeight:   5.0,
		ConfidenceDivisor: 15.0,
		MinCriteriaShare:  0.6,
	}
}

func (c *RubricClassifier) Classify(text string, award models.AwardDefinition) models.AwardScore {
	result := models.AwardScore{
		AwardKey:          award.Key,
		MatchedKeywords:   []string{},
		SatisfiedCriteria: []string{},
	}

	if strings.TrimSpace(text) == "" {
		return result
	}

	score := 0.0
	for _, keyword := range award.Keywords {
		count := countWordOccurrences(text, keyword)
		if count == 0 {
			continue
		}
		weight := c.KeywordWeight
		if strings.Contains(keyword, " ") {
			weight = c.PhraseWeight
		}
		score += float64(count) * weight
		result.MatchedKeywords = append(result.MatchedKeywords, keyword)
	}

	for _, criterion := range award.Criteria {
		if CriterionSatisfied(text, criterion) {
			score += c.CriterionWeight
			result.SatisfiedCriteria = append(result.SatisfiedCriteria, criterion)
		}
	}

	result.Score = score

	// The rubric refuses to express confidence without broad criteria
	// coverage, regardless of raw keyword volume.
	share := float64(len(result.SatisfiedCriteria)) / float64(len(award.Criteria))
	if share < c.MinCriteriaShare {
		result.Confidence = 0
		return result
	}

	result.Confidence = clampConfidence(score / c.ConfidenceDivisor)
	return result
}
