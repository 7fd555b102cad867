package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/career-compass/internal/catalog"
	"github.com/spigell/career-compass/internal/profile"
)

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func scenarioAProfile(t *testing.T) *profile.Profile {
	t.Helper()
	p, err := profile.New(
		[]string{"Biology", "Physics", "Mathematics"},
		[]string{"Problem solving"},
		nil,
		[]int{9},
	)
	require.NoError(t, err)
	return p
}

func ids(candidates []ScoredCandidate) []int {
	out := make([]int, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Career.ID)
	}
	return out
}

func TestMaxScore(t *testing.T) {
	assert.Equal(t, 27, New(Options{UseDesiredSkills: true}).MaxScore())
	assert.Equal(t, 24, New(Options{}).MaxScore())
}

func TestMatchScenarioA(t *testing.T) {
	c := defaultCatalog(t)
	m := New(Options{UseDesiredSkills: true})

	got := m.Match(scenarioAProfile(t), c)
	require.Len(t, got, DefaultLimit)

	// Biomedical Engineer and Space Systems Engineer tie at 11; catalog order breaks the tie.
	assert.Equal(t, []int{3, 18, 14, 19, 26, 27}, ids(got))

	space := got[1]
	assert.Equal(t, "Space Systems Engineer", space.Career.Title)
	assert.Equal(t, 11, space.Score)
	assert.Equal(t, 41, space.MatchScore)
	assert.Equal(t, []string{"Physics", "Mathematics"}, space.Details.Interests)
	assert.Equal(t, []string{"Problem solving"}, space.Details.CurrentSkills)
	assert.Equal(t, []int{9}, space.Details.SDGs)

	for _, candidate := range got {
		assert.NotEqual(t, "Journalist", candidate.Career.Title)
	}

	journalist, ok := c.FindByID(23)
	require.True(t, ok)
	assert.Zero(t, m.Score(scenarioAProfile(t), journalist).Score)
}

func TestMatchEmptyProfileWithoutBackfill(t *testing.T) {
	got := New(Options{UseDesiredSkills: true}).Match(&profile.Profile{}, defaultCatalog(t))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatchEmptyProfileWithBackfill(t *testing.T) {
	got := New(Options{Backfill: true}).Match(&profile.Profile{}, defaultCatalog(t))
	require.Len(t, got, DefaultLimit)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(got))
	for _, candidate := range got {
		assert.Zero(t, candidate.Score)
		assert.Zero(t, candidate.MatchScore)
	}
}

func TestMatchBackfillAfterPositiveScores(t *testing.T) {
	p, err := profile.New([]string{"Philosophy"}, nil, nil, nil)
	require.NoError(t, err)

	got := New(Options{Backfill: true}).Match(p, defaultCatalog(t))
	require.Len(t, got, DefaultLimit)
	assert.Equal(t, 19, got[0].Career.ID, "AI Engineer is the only philosophy match")
	assert.Equal(t, []int{19, 1, 2, 3, 4, 5}, ids(got))
}

func TestMatchShortResultWithoutBackfill(t *testing.T) {
	p, err := profile.New([]string{"Philosophy"}, nil, nil, nil)
	require.NoError(t, err)

	got := New(Options{}).Match(p, defaultCatalog(t))
	assert.Equal(t, []int{19}, ids(got))
}

func TestMatchIsIdempotent(t *testing.T) {
	c := defaultCatalog(t)
	m := New(Options{UseDesiredSkills: true})
	p := scenarioAProfile(t)

	first := m.Match(p, c)
	second := m.Match(p, c)
	assert.Equal(t, first, second)
}

func TestMatchOrderingIsStable(t *testing.T) {
	records := []catalog.CareerRecord{
		{ID: 10, Title: "First", SDGs: []int{13}},
		{ID: 4, Title: "Second", SDGs: []int{13}, Interests: []string{"Physics"}},
		{ID: 7, Title: "Third", SDGs: []int{13}},
	}
	c, err := catalog.New(records)
	require.NoError(t, err)

	p, err := profile.New([]string{"Physics"}, nil, nil, []int{13})
	require.NoError(t, err)

	got := New(Options{}).Match(p, c)
	assert.Equal(t, []int{4, 10, 7}, ids(got))

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

func TestScoreMonotonicity(t *testing.T) {
	c := defaultCatalog(t)
	m := New(Options{UseDesiredSkills: true})

	steps := []func(p *profile.Profile){
		func(p *profile.Profile) { p.ToggleInterest("Physics") },
		func(p *profile.Profile) { p.ToggleCurrentSkill("Problem solving") },
		func(p *profile.Profile) { p.ToggleDesiredSkill("Building or fixing") },
		func(p *profile.Profile) { p.ToggleSDG(9) },
		func(p *profile.Profile) { p.ToggleInterest("Mathematics") },
		func(p *profile.Profile) { p.ToggleSDG(13) },
	}

	p := &profile.Profile{}
	previous := make(map[int]int)

	for _, step := range steps {
		step(p)
		for _, career := range c.Careers() {
			score := m.Score(p, career).Score
			assert.GreaterOrEqual(t, score, previous[career.ID], career.Title)
			previous[career.ID] = score
		}
	}
}

func TestNormalizationBound(t *testing.T) {
	career := catalog.CareerRecord{
		ID:        1,
		Title:     "Everything",
		Interests: []string{"a", "b", "c"},
		Skills:    []string{"x", "y", "z"},
		SDGs:      []int{1, 2, 3},
	}
	p, err := profile.New([]string{"a", "b", "c"}, []string{"x", "y", "z"}, []string{"x", "y", "z"}, []int{1, 2, 3})
	require.NoError(t, err)

	with := New(Options{UseDesiredSkills: true}).Score(p, career)
	assert.Equal(t, 27, with.Score)
	assert.Equal(t, 100, with.MatchScore)

	// Desired skills ignored: the score and the maximum drop together.
	without := New(Options{}).Score(p, career)
	assert.Equal(t, 24, without.Score)
	assert.Equal(t, 100, without.MatchScore)

	for _, candidate := range New(Options{UseDesiredSkills: true, Backfill: true, Limit: 28}).Match(p, defaultCatalog(t)) {
		assert.GreaterOrEqual(t, candidate.MatchScore, 0)
		assert.LessOrEqual(t, candidate.MatchScore, 100)
	}
}

func TestMatchIsCaseSensitive(t *testing.T) {
	p, err := profile.New([]string{"physics"}, nil, nil, nil)
	require.NoError(t, err)

	assert.Empty(t, New(Options{}).Match(p, defaultCatalog(t)))
}
