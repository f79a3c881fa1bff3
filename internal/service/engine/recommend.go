package engine

import (
	"fmt"
	"strings"

	"github.com/RubachokBoss/award-tracker/internal/models"
)

// criterionSuggestions maps exact criterion text to a curated suggestion.
// Criteria without an entry fall back to a synthesized generic suggestion.
var criterionSuggestions = map[string]string{
	"Lead with Purpose": "Publish a goals document or meeting minutes showing officers driving an initiative.",
	"Mentor Emerging Leaders": "Record a mentorship pairing or officer shadowing session as an event.",
	"Communicate a Shared Vision": "Upload the strategic plan or a newsletter laying out the year's vision.",
	"Serve the Local Community": "Add a report or photos from a local service project.",
	"Organize Volunteer Projects": "Create an event entry for an upcoming or completed volunteer project.",
	"Document Service Hours": "Upload the service-hour log or tracking spreadsheet.",
	"Host Career Workshops": "Schedule a resume, interview or skills workshop and record it as an event.",
	"Build Professional Networks": "Document a networking night or an alumni connection program.",
	"Invite Industry Speakers": "Add the flyer or summary from a guest speaker session.",
	"Establish Partner Agreements": "Upload the signed memorandum of understanding with the partner organization.",
	"Collaborate Across Organizations": "Record a joint event held with another chapter or organization.",
	"Recruit New Members": "Document a recruitment drive, info session or tabling event.",
	"Retain Active Members": "Upload attendance records or a member retention report.",
	"Run Engagement Activities": "Create event entries for socials, games nights or member mixers.",
}

// Recommend derives the actionable suggestions for an award that is not
// ready. Quantity shortfalls rank above unmet criteria. A ready award yields
// no recommendations. Output is regenerated on demand and never persisted.
func Recommend(award models.AwardDefinition, status models.ReadinessStatus) []models.Recommendation {
	if status.IsReady {
		return nil
	}

	var recs []models.Recommendation

	if status.TotalItems < award.Threshold {
		missing := award.Threshold - status.TotalItems
		noun := "items"
		if missing == 1 {
			noun = "item"
		}
		recs = append(recs, models.Recommendation{
			Type:     models.RecommendationTypeQuantity,
			AwardKey: award.Key,
			Message: fmt.Sprintf("%s needs %d more content %s to meet its minimum of %d.",
				award.Name, missing, noun, award.Threshold),
			Priority: models.RecommendationPriorityHigh,
		})
	}

	for _, criterion := range status.UnsatisfiedCriteria {
		suggestion, ok := criterionSuggestions[criterion]
		if !ok {
			suggestion = fmt.Sprintf("Create content that demonstrates %s.", strings.ToLower(criterion))
		}
		recs = append(recs, models.Recommendation{
			Type:       models.RecommendationTypeCriteria,
			AwardKey:   award.Key,
			Message:    fmt.Sprintf("No assigned content evidences criterion %q yet.", criterion),
			Suggestion: suggestion,
			Priority:   models.RecommendationPriorityMedium,
		})
	}

	return recs
}
