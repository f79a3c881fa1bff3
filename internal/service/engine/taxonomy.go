package engine

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RubachokBoss/award-tracker/internal/models"
)

var (
	ErrAwardKeyEmpty     = errors.New("award key is empty")
	ErrAwardKeyDuplicate = errors.New("duplicate award key")
	ErrAwardNoCriteria   = errors.New("award has no criteria")
	ErrAwardBadThreshold = errors.New("award threshold must be at least 1")
	ErrTaxonomyEmpty     = errors.New("taxonomy has no awards")
	ErrUnknownAwardKey   = errors.New("unknown award key")
)

// Taxonomy is the immutable award list loaded once per evaluation run. Order
// is significant: the assigner's stable sort keeps taxonomy order on ties.
type Taxonomy struct {
	awards []models.AwardDefinition
	index  map[string]int
}

func NewTaxonomy(awards []models.AwardDefinition) (*Taxonomy, error) {
	if len(awards) == 0 {
		return nil, ErrTaxonomyEmpty
	}

	index := make(map[string]int, len(awards))
	for i, award := range awards {
		if err := ValidateAward(award); err != nil {
			return nil, fmt.Errorf("award %q: %w", award.Key, err)
		}
		if _, exists := index[award.Key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrAwardKeyDuplicate, award.Key)
		}
		index[award.Key] = i
	}

	copied := make([]models.AwardDefinition, len(awards))
	copy(copied, awards)

	return &Taxonomy{awards: copied, index: index}, nil
}

// Awards returns the award list in taxonomy order.
func (t *Taxonomy) Awards() []models.AwardDefinition {
	out := make([]models.AwardDefinition, len(t.awards))
	copy(out, t.awards)
	return out
}

func (t *Taxonomy) Get(key string) (models.AwardDefinition, bool) {
	i, ok := t.index[key]
	if !ok {
		return models.AwardDefinition{}, false
	}
	return t.awards[i], true
}

func (t *Taxonomy) Len() int {
	return len(t.awards)
}

// ValidateAward enforces the taxonomy invariants: non-empty key and criteria,
// threshold of at least one item.
func ValidateAward(award models.AwardDefinition) error {
	if award.Key == "" {
		return ErrAwardKeyEmpty
	}
	if len(award.Criteria) == 0 {
		return ErrAwardNoCriteria
	}
	if award.Threshold < 1 {
		return ErrAwardBadThreshold
	}
	return nil
}

type taxonomyFile struct {
	Awards []taxonomyFileAward `yaml:"awards"`
}

type taxonomyFileAward struct {
	Key       string   `yaml:"key"`
	Name      string   `yaml:"name"`
	Criteria  []string `yaml:"criteria"`
	Keywords  []string `yaml:"keywords"`
	Threshold int      `yaml:"threshold"`
}

// LoadTaxonomyFile reads award definitions from a YAML file. Used to seed the
// awards table on first start; the table stays the source of truth afterwards.
func LoadTaxonomyFile(path string) ([]models.AwardDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}

	var file taxonomyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file: %w", err)
	}

	awards := make([]models.AwardDefinition, 0, len(file.Awards))
	for _, a := range file.Awards {
		awards = append(awards, models.AwardDefinition{
			Key:       a.Key,
			Name:      a.Name,
			Criteria:  a.Criteria,
			Keywords:  a.Keywords,
			Threshold: a.Threshold,
		})
	}

	if _, err := NewTaxonomy(awards); err != nil {
		return nil, err
	}

	return awards, nil
}

// DefaultAwards is the built-in office taxonomy, used when no taxonomy file is
// configured and the awards table is empty.
func DefaultAwards() []models.AwardDefinition {
	return []models.AwardDefinition{
		{
			Key:  "leadership",
			Name: "Leadership Excellence",
			Criteria: []string{
				"Lead with Purpose",
				"Mentor Emerging Leaders",
				"Communicate a Shared Vision",
			},
			Keywords:  []string{"leadership", "vision", "mentor", "initiative", "officer training"},
			Threshold: 3,
		},
		{
			Key:  "community-service",
			Name: "Community Service",
			Criteria: []string{
				"Serve the Local Community",
				"Organize Volunteer Projects",
				"Document Service Hours",
			},
			Keywords:  []string{"service", "volunteer", "community", "outreach", "donation"},
			Threshold: 4,
		},
		{
			Key:  "professional-development",
			Name: "Professional Development",
			Criteria: []string{
				"Host Career Workshops",
				"Build Professional Networks",
				"Invite Industry Speakers",
			},
			Keywords:  []string{"workshop", "career", "networking", "professional", "seminar"},
			Threshold: 3,
		},
		{
			Key:  "partnership",
			Name: "Partnership & Collaboration",
			Criteria: []string{
				"Establish Partner Agreements",
				"Collaborate Across Organizations",
			},
			Keywords:  []string{"partnership", "mou", "agreement", "collaboration", "sponsor"},
			Threshold: 2,
		},
		{
			Key:  "membership",
			Name: "Membership Growth",
			Criteria: []string{
				"Recruit New Members",
				"Retain Active Members",
				"Run Engagement Activities",
			},
			Keywords:  []string{"member", "recruitment", "retention", "engagement", "induction"},
			Threshold: 3,
		},
	}
}
