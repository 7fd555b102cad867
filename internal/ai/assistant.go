package ai

import (
	"context"
	"slices"

	"github.com/spigell/career-compass/internal/catalog"
	"github.com/spigell/career-compass/internal/matching"
	"github.com/spigell/career-compass/internal/profile"
)

// SkillMatches echoes the skills the model found relevant.
type SkillMatches struct {
	Current []string `json:"current" mapstructure:"current"`
	Desired []string `json:"desired,omitempty" mapstructure:"desired"`
}

// AIMatch is a career recommended by a language model.
// Analysis is set only by the judge.
type AIMatch struct {
	ID                int          `json:"id" mapstructure:"id"`
	Title             string       `json:"title" mapstructure:"title"`
	Description       string       `json:"description" mapstructure:"description"`
	MatchScore        int          `json:"match_score" mapstructure:"match_score"`
	Explanation       string       `json:"explanation" mapstructure:"explanation"`
	MatchingInterests []string     `json:"matching_interests" mapstructure:"matching_interests"`
	MatchingSkills    SkillMatches `json:"matching_skills" mapstructure:"matching_skills"`
	MatchingSDGs      []string     `json:"matching_sdgs" mapstructure:"matching_sdgs"`
	Analysis          string       `json:"analysis,omitempty" mapstructure:"analysis"`
}

// Matcher recommends careers from a profile and a catalog.
type Matcher interface {
	Match(ctx context.Context, p *profile.Profile, c *catalog.Catalog) ([]AIMatch, error)
}

// Judge fuses the deterministic and the model results into one ranking.
type Judge interface {
	Judge(ctx context.Context, p *profile.Profile, manual []matching.ScoredCandidate, suggested []AIMatch) ([]AIMatch, error)
}

// SortMatches orders matches by descending score, keeping the service order
// for equal scores. The service promises distinct sorted scores but does not
// always deliver.
func SortMatches(matches []AIMatch) {
	slices.SortStableFunc(matches, func(a, b AIMatch) int {
		return b.MatchScore - a.MatchScore
	})
}
