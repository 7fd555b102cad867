package gemini

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/catalog"
	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/matching"
	"github.com/spigell/career-compass/internal/profile"
)

// Judge asks Gemini to fuse the deterministic and the model rankings.
type Judge struct {
	generator contentGenerator
	opts      Options
	logger    *zap.Logger
}

var _ ai.Judge = (*Judge)(nil)

func NewJudge(generator contentGenerator, opts Options, log *zap.Logger) *Judge {
	return &Judge{
		generator: generator,
		opts:      opts.withDefaults(),
		logger:    logger.WithCommonFields(log, Provider, generator.Model()),
	}
}

type manualEntry struct {
	Rank              int             `json:"rank"`
	ID                int             `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description,omitempty"`
	Score             int             `json:"score"`
	MatchScore        int             `json:"match_score"`
	MatchingInterests []string        `json:"matching_interests"`
	MatchingSkills    ai.SkillMatches `json:"matching_skills"`
	MatchingSDGs      []string        `json:"matching_sdgs"`
}

type suggestedEntry struct {
	Rank int `json:"rank"`
	ai.AIMatch
}

func (j *Judge) Judge(ctx context.Context, p *profile.Profile, manual []matching.ScoredCandidate, suggested []ai.AIMatch) ([]ai.AIMatch, error) {
	if len(manual) == 0 || len(suggested) == 0 {
		return nil, ai.ErrInsufficientInput
	}
	if p == nil {
		return nil, fmt.Errorf("profile is required")
	}

	type known struct{ title, description string }
	union := make(map[int]known, len(manual)+len(suggested))

	manualSet := make([]manualEntry, 0, len(manual))
	for i, candidate := range manual {
		entry := manualEntry{
			Rank:              i + 1,
			ID:                candidate.Career.ID,
			Title:             candidate.Career.Title,
			Score:             candidate.Score,
			MatchScore:        candidate.MatchScore,
			MatchingInterests: candidate.Details.Interests,
			MatchingSkills: ai.SkillMatches{
				Current: candidate.Details.CurrentSkills,
				Desired: candidate.Details.DesiredSkills,
			},
			MatchingSDGs: catalog.SDGLabels(candidate.Details.SDGs),
		}
		if j.opts.IncludeDescriptions {
			entry.Description = candidate.Career.Description
		}
		manualSet = append(manualSet, entry)
		union[candidate.Career.ID] = known{candidate.Career.Title, candidate.Career.Description}
	}

	suggestedSet := make([]suggestedEntry, 0, len(suggested))
	for i, match := range suggested {
		suggestedSet = append(suggestedSet, suggestedEntry{Rank: i + 1, AIMatch: match})
		if _, ok := union[match.ID]; !ok {
			union[match.ID] = known{match.Title, match.Description}
		}
	}

	manualJSON, err := marshalPrompt(manualSet)
	if err != nil {
		return nil, fmt.Errorf("marshal manual matches: %w", err)
	}
	suggestedJSON, err := marshalPrompt(suggestedSet)
	if err != nil {
		return nil, fmt.Errorf("marshal ai matches: %w", err)
	}

	values := profileValues(p, j.opts.UseDesiredSkills, j.opts.Limit)
	values["MANUAL_JSON"] = manualJSON
	values["AI_JSON"] = suggestedJSON

	req := Request{
		System:  render(judgeSystemTemplate, values),
		Message: render(judgeUserTemplate, values),
		Schema:  responseSchema(j.opts.UseDesiredSkills, true),
	}

	raw, err := generate(ctx, j.generator, j.logger, stageJudge, req, j.opts.MaxLogLength)
	if err != nil {
		return nil, err
	}

	matches, err := parseMatches(stageJudge, raw, judgeSchema, j.opts.MaxLogLength)
	if err != nil {
		return nil, err
	}

	for _, match := range matches {
		if strings.TrimSpace(match.Analysis) == "" {
			return nil, &ai.ResponseParseError{
				Stage:  stageJudge,
				Reason: fmt.Sprintf("career %d has an empty analysis", match.ID),
			}
		}
	}

	lookup := func(id int) (string, string, bool) {
		k, ok := union[id]
		return k.title, k.description, ok
	}

	return reconcile(stageJudge, matches, lookup, j.opts, j.logger)
}
