// Package matching scores catalog careers against a profile with a fixed weighted overlap.
package matching

import (
	"math"
	"slices"
	"strings"

	"github.com/spigell/career-compass/internal/catalog"
	"github.com/spigell/career-compass/internal/profile"
)

const DefaultLimit = 6

// Weights per matched item.
type Weights struct {
	Interest     int
	CurrentSkill int
	DesiredSkill int
	SDG          int
}

var DefaultWeights = Weights{
	Interest:     3,
	CurrentSkill: 2,
	DesiredSkill: 1,
	SDG:          3,
}

type Options struct {
	// UseDesiredSkills adds the desired-skills term to the score and to the maximum.
	UseDesiredSkills bool
	// Backfill pads a short result with zero-score careers in catalog order.
	Backfill bool
	// Limit caps the result length. Non-positive means DefaultLimit.
	Limit   int
	Weights Weights
}

// MatchDetails lists the profile items that contributed to a score.
type MatchDetails struct {
	Interests     []string `json:"interests"`
	CurrentSkills []string `json:"current_skills"`
	DesiredSkills []string `json:"desired_skills,omitempty"`
	SDGs          []int    `json:"sdgs"`
}

// ScoredCandidate is a career with its weighted score.
type ScoredCandidate struct {
	Career     catalog.CareerRecord `json:"career"`
	Score      int                  `json:"score"`
	MatchScore int                  `json:"match_score"`
	Details    MatchDetails         `json:"match_details"`
}

// Matcher is the deterministic matcher. It holds no state besides options
// and is safe for concurrent use.
type Matcher struct {
	opts Options
}

func New(opts Options) *Matcher {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Weights == (Weights{}) {
		opts.Weights = DefaultWeights
	}
	return &Matcher{opts: opts}
}

func (m *Matcher) Options() Options {
	return m.opts
}

// MaxScore is the best score a profile at full cardinality can reach.
func (m *Matcher) MaxScore() int {
	w := m.opts.Weights
	best := profile.MaxSelections * (w.Interest + w.CurrentSkill + w.SDG)
	if m.opts.UseDesiredSkills {
		best += profile.MaxSelections * w.DesiredSkill
	}
	return best
}

// Score computes the weighted overlap of a single career.
func (m *Matcher) Score(p *profile.Profile, career catalog.CareerRecord) ScoredCandidate {
	w := m.opts.Weights
	details := MatchDetails{
		Interests:     intersectStrings(p.Interests, career.Interests),
		CurrentSkills: intersectStrings(p.CurrentSkills, career.Skills),
		SDGs:          intersectInts(p.SDGs, career.SDGs),
	}

	score := w.Interest*len(details.Interests) +
		w.CurrentSkill*len(details.CurrentSkills) +
		w.SDG*len(details.SDGs)

	if m.opts.UseDesiredSkills {
		details.DesiredSkills = intersectStrings(p.DesiredSkills, career.Skills)
		score += w.DesiredSkill * len(details.DesiredSkills)
	}

	return ScoredCandidate{
		Career:     career,
		Score:      score,
		MatchScore: m.normalize(score),
		Details:    details,
	}
}

// Match ranks the catalog: positive scores only, descending, ties kept in
// catalog order, at most Limit entries. The result depends only on the inputs.
func (m *Matcher) Match(p *profile.Profile, c *catalog.Catalog) []ScoredCandidate {
	if c == nil || c.Len() == 0 {
		return []ScoredCandidate{}
	}
	if p == nil {
		p = &profile.Profile{}
	}

	scored := make([]ScoredCandidate, 0, c.Len())
	var zero []ScoredCandidate

	for i := 0; i < c.Len(); i++ {
		candidate := m.Score(p, c.At(i))
		if candidate.Score > 0 {
			scored = append(scored, candidate)
			continue
		}
		if m.opts.Backfill {
			zero = append(zero, candidate)
		}
	}

	slices.SortStableFunc(scored, func(a, b ScoredCandidate) int {
		return b.Score - a.Score
	})

	if len(scored) > m.opts.Limit {
		scored = scored[:m.opts.Limit]
	}

	if m.opts.Backfill {
		for _, candidate := range zero {
			if len(scored) >= m.opts.Limit {
				break
			}
			scored = append(scored, candidate)
		}
	}

	return scored
}

func (m *Matcher) normalize(score int) int {
	best := m.MaxScore()
	if best <= 0 || score <= 0 {
		return 0
	}
	normalized := int(math.Round(100 * float64(score) / float64(best)))
	if normalized > 100 {
		return 100
	}
	return normalized
}

func intersectStrings(selected, tags []string) []string {
	matched := make([]string, 0)
	for _, s := range selected {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if slices.Contains(tags, s) && !slices.Contains(matched, s) {
			matched = append(matched, s)
		}
	}
	return matched
}

func intersectInts(selected, ids []int) []int {
	matched := make([]int, 0)
	for _, id := range selected {
		if slices.Contains(ids, id) && !slices.Contains(matched, id) {
			matched = append(matched, id)
		}
	}
	return matched
}
