package engine

import (
	"regexp"
	"strings"

	"github.com/RubachokBoss/award-tracker/internal/models"
)

// Classifier scores normalized text against one award definition. Both
// implementations are deterministic keyword/phrase scorers; office staff must
// be able to audit why an item matched an award, so no statistical model
// belongs behind this interface.
type Classifier interface {
	Classify(text string, award models.AwardDefinition) models.AwardScore
}

// ClassifyAll runs the classifier over every award in taxonomy order.
func ClassifyAll(c Classifier, text string, taxonomy *Taxonomy) []models.AwardScore {
	awards := taxonomy.Awards()
	results := make([]models.AwardScore, 0, len(awards))
	for _, award := range awards {
		results = append(results, c.Classify(text, award))
	}
	return results
}

// LinearClassifier is the canonical scoring formula: whole-word keyword
// occurrence counts plus a fixed bonus per satisfied criterion, confidence
// normalized linearly. The acceptance threshold (assigner) and per-award
// thresholds were tuned against this exact formula.
type LinearClassifier struct {
	CriterionBonus    float64
	ConfidenceDivisor float64
}

const (
	defaultCriterionBonus    = 5.0
	defaultConfidenceDivisor = 10.0
)

func NewLinearClassifier() *LinearClassifier {
	return &LinearClassifier{
		CriterionBonus:    defaultCriterionBonus,
		ConfidenceDivisor: defaultConfidenceDivisor,
	}
}

func (c *LinearClassifier) Classify(text string, award models.AwardDefinition) models.AwardScore {
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
		if count > 0 {
			score += float64(count)
			result.MatchedKeywords = append(result.MatchedKeywords, keyword)
		}
	}

	for _, criterion := range award.Criteria {
		if CriterionSatisfied(text, criterion) {
			score += c.bonus()
			result.SatisfiedCriteria = append(result.SatisfiedCriteria, criterion)
		}
	}

	result.Score = score
	result.Confidence = clampConfidence(score / c.divisor())

	return result
}

func (c *LinearClassifier) bonus() float64 {
	if c.CriterionBonus > 0 {
		return c.CriterionBonus
	}
	return defaultCriterionBonus
}

func (c *LinearClassifier) divisor() float64 {
	if c.ConfidenceDivisor > 0 {
		return c.ConfidenceDivisor
	}
	return defaultConfidenceDivisor
}

// countWordOccurrences counts whole-word, case-insensitive occurrences of
// keyword in text. Word-boundary matching, not plain substring, so "art" does
// not fire inside "partnership".
func countWordOccurrences(text, keyword string) int {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return 0
	}

	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
	if err != nil {
		return 0
	}

	return len(re.FindAllStringIndex(text, -1))
}

// criterionFillerWords are connective words dropped from criterion statements
// before the 50%-token check, alongside the length filter. Part of the scoring
// formula, deliberately not configurable.
var criterionFillerWords = map[string]bool{
	"the": true, "and": true, "with": true, "that": true,
	"for": true, "from": true, "this": true, "are": true,
	"was": true, "were": true, "will": true, "have": true,
	"has": true, "had": true, "our": true, "your": true,
}

// CriterionTokens splits a criterion statement into the lower-cased tokens
// used by the satisfaction rule. Tokens of length <= 2 and filler words are
// discarded.
func CriterionTokens(criterion string) []string {
	fields := strings.Fields(strings.ToLower(criterion))
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		tok = strings.TrimFunc(tok, func(r rune) bool {
			return !isAlnum(r)
		})
		if len(tok) <= 2 || criterionFillerWords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// CriterionSatisfied applies the 50%-token rule: a criterion holds when at
// least half of its tokens are found in the text, where "found" means a direct
// substring match or a substring match after stripping non-alphanumeric
// characters from the token (tolerates hyphenation and similar variants).
func CriterionSatisfied(text, criterion string) bool {
	tokens := CriterionTokens(criterion)
	if len(tokens) == 0 {
		return false
	}

	matched := 0
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			matched++
			continue
		}
		if stripped := stripNonAlnum(tok); stripped != "" && strings.Contains(text, stripped) {
			matched++
		}
	}

	return float64(matched)/float64(len(tokens)) >= 0.5
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isAlnum(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func clampConfidence(c float64) float64 {
	if c > 1.0 {
		return 1.0
	}
	if c < 0 {
		return 0
	}
	return c
}
