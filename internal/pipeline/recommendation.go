package pipeline

import (
	"fmt"
	"strings"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/catalog"
	"github.com/spigell/career-compass/internal/matching"
)

// Recommendation is the source-independent view of a ranked career.
type Recommendation struct {
	ID                int             `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	MatchScore        int             `json:"match_score"`
	Explanation       string          `json:"explanation,omitempty"`
	Analysis          string          `json:"analysis,omitempty"`
	MatchingInterests []string        `json:"matching_interests"`
	MatchingSkills    ai.SkillMatches `json:"matching_skills"`
	MatchingSDGs      []string        `json:"matching_sdgs"`
	Source            Source          `json:"source"`
}

// Recommendations returns the chosen ranking.
func (r *Result) Recommendations() []Recommendation {
	if r == nil {
		return nil
	}

	switch r.Source {
	case SourceJudge:
		return fromAI(r.Judge, SourceJudge)
	case SourceAI:
		return fromAI(r.AI, SourceAI)
	default:
		return fromManual(r.Manual)
	}
}

func fromAI(matches []ai.AIMatch, source Source) []Recommendation {
	recs := make([]Recommendation, 0, len(matches))
	for _, m := range matches {
		recs = append(recs, Recommendation{
			ID:                m.ID,
			Title:             m.Title,
			Description:       m.Description,
			MatchScore:        m.MatchScore,
			Explanation:       m.Explanation,
			Analysis:          m.Analysis,
			MatchingInterests: m.MatchingInterests,
			MatchingSkills:    m.MatchingSkills,
			MatchingSDGs:      m.MatchingSDGs,
			Source:            source,
		})
	}
	return recs
}

func fromManual(candidates []matching.ScoredCandidate) []Recommendation {
	recs := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		recs = append(recs, Recommendation{
			ID:                c.Career.ID,
			Title:             c.Career.Title,
			Description:       c.Career.Description,
			MatchScore:        c.MatchScore,
			Explanation:       explainManual(c.Details),
			MatchingInterests: c.Details.Interests,
			MatchingSkills: ai.SkillMatches{
				Current: c.Details.CurrentSkills,
				Desired: c.Details.DesiredSkills,
			},
			MatchingSDGs: catalog.SDGLabels(c.Details.SDGs),
			Source:       SourceManual,
		})
	}
	return recs
}

func explainManual(d matching.MatchDetails) string {
	var parts []string
	if len(d.Interests) > 0 {
		parts = append(parts, "interests: "+strings.Join(d.Interests, ", "))
	}
	if len(d.CurrentSkills) > 0 {
		parts = append(parts, "skills: "+strings.Join(d.CurrentSkills, ", "))
	}
	if len(d.DesiredSkills) > 0 {
		parts = append(parts, "skills to develop: "+strings.Join(d.DesiredSkills, ", "))
	}
	if len(d.SDGs) > 0 {
		parts = append(parts, fmt.Sprintf("%d shared SDG(s)", len(d.SDGs)))
	}
	if len(parts) == 0 {
		return "No overlap with your selections."
	}
	return "Matches your " + strings.Join(parts, "; ") + "."
}
