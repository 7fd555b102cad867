package gemini

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/catalog"
	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/matching"
	"github.com/spigell/career-compass/internal/profile"
	"github.com/spigell/career-compass/internal/utils"
)

const (
	defaultMaxLogLength = 200

	stageMatcher = "matcher"
	stageJudge   = "judge"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, req Request) (string, error)
	Model() string
}

// Options are shared by Matcher and Judge.
type Options struct {
	// Limit is how many matches are requested and kept.
	Limit int
	// IncludeDescriptions sends career descriptions along with titles.
	IncludeDescriptions bool
	UseDesiredSkills    bool
	MaxLogLength        int
}

func (o Options) withDefaults() Options {
	if o.Limit <= 0 {
		o.Limit = matching.DefaultLimit
	}
	if o.MaxLogLength <= 0 {
		o.MaxLogLength = defaultMaxLogLength
	}
	return o
}

// Matcher asks Gemini to pick careers from the catalog.
type Matcher struct {
	generator contentGenerator
	opts      Options
	logger    *zap.Logger
}

var _ ai.Matcher = (*Matcher)(nil)

func NewMatcher(generator contentGenerator, opts Options, log *zap.Logger) *Matcher {
	return &Matcher{
		generator: generator,
		opts:      opts.withDefaults(),
		logger:    logger.WithCommonFields(log, Provider, generator.Model()),
	}
}

func (m *Matcher) Match(ctx context.Context, p *profile.Profile, c *catalog.Catalog) ([]ai.AIMatch, error) {
	if p == nil {
		return nil, fmt.Errorf("profile is required")
	}
	if c == nil || c.Len() == 0 {
		return nil, &catalog.LoadError{Source: "matcher input", Expected: "at least one career", Found: "an empty catalog"}
	}

	careers, err := careersJSON(c, m.opts.IncludeDescriptions)
	if err != nil {
		return nil, err
	}

	values := profileValues(p, m.opts.UseDesiredSkills, m.opts.Limit)
	values["CAREERS_JSON"] = careers

	req := Request{
		System:  render(matcherSystemTemplate, values),
		Message: render(matcherUserTemplate, values),
		Schema:  responseSchema(m.opts.UseDesiredSkills, false),
	}

	raw, err := generate(ctx, m.generator, m.logger, stageMatcher, req, m.opts.MaxLogLength)
	if err != nil {
		return nil, err
	}

	matches, err := parseMatches(stageMatcher, raw, matchesSchema, m.opts.MaxLogLength)
	if err != nil {
		return nil, err
	}

	lookup := func(id int) (string, string, bool) {
		record, ok := c.FindByID(id)
		return record.Title, record.Description, ok
	}

	return reconcile(stageMatcher, matches, lookup, m.opts, m.logger)
}

func generate(ctx context.Context, generator contentGenerator, log *zap.Logger, stage string, req Request, maxLogLen int) (string, error) {
	log.Debug("gemini generate content request",
		zap.String("stage", stage),
		zap.Int("prompt_length", utf8.RuneCountInString(req.Message)),
		zap.String("prompt_preview", utils.TruncateForLog(req.Message, maxLogLen)),
	)

	raw, err := generator.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}

	log.Debug("gemini generate content response",
		zap.String("stage", stage),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, maxLogLen)),
	)

	return raw, nil
}

// reconcile drops entries the caller cannot resolve or has already seen,
// canonicalizes the echoed fields and returns at most opts.Limit matches sorted
// by score. An empty survivor list is a parse error.
func reconcile(stage string, matches []ai.AIMatch, lookup func(id int) (string, string, bool), opts Options, log *zap.Logger) ([]ai.AIMatch, error) {
	seen := make(map[int]struct{}, len(matches))
	kept := make([]ai.AIMatch, 0, len(matches))

	for _, match := range matches {
		title, description, ok := lookup(match.ID)
		if !ok {
			log.Warn("dropping match with unknown career id",
				zap.String("stage", stage),
				zap.Int("id", match.ID),
				zap.String("title", match.Title),
			)
			continue
		}
		if _, dup := seen[match.ID]; dup {
			log.Warn("dropping duplicate match", zap.String("stage", stage), zap.Int("id", match.ID))
			continue
		}
		seen[match.ID] = struct{}{}

		match.Title = title
		if strings.TrimSpace(match.Description) == "" {
			match.Description = description
		}
		match.Explanation = strings.TrimSpace(match.Explanation)
		match.Analysis = strings.TrimSpace(match.Analysis)
		for i, ref := range match.MatchingSDGs {
			match.MatchingSDGs[i] = sdgLabel(ref)
		}
		if !opts.UseDesiredSkills {
			match.MatchingSkills.Desired = nil
		}

		kept = append(kept, match)
	}

	if len(kept) == 0 {
		return nil, &ai.ResponseParseError{Stage: stage, Reason: "no match references a known career"}
	}

	ai.SortMatches(kept)
	if len(kept) > opts.Limit {
		kept = kept[:opts.Limit]
	}

	return kept, nil
}
