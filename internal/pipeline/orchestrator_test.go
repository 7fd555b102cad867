package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/catalog"
	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/matching"
	"github.com/spigell/career-compass/internal/profile"
)

type fakeMatcher struct {
	matches []ai.AIMatch
	err     error
	calls   int
}

func (f *fakeMatcher) Match(context.Context, *profile.Profile, *catalog.Catalog) ([]ai.AIMatch, error) {
	f.calls++
	return f.matches, f.err
}

type fakeJudge struct {
	matches []ai.AIMatch
	err     error
	calls   int
	manual  []matching.ScoredCandidate
	ai      []ai.AIMatch
}

func (f *fakeJudge) Judge(_ context.Context, _ *profile.Profile, manual []matching.ScoredCandidate, suggested []ai.AIMatch) ([]ai.AIMatch, error) {
	f.calls++
	f.manual = manual
	f.ai = suggested
	return f.matches, f.err
}

func scenarioProfile(t *testing.T) *profile.Profile {
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

func newOrchestrator(t *testing.T, log *zap.Logger, opts ...Option) *Orchestrator {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	o, err := New(c, matching.New(matching.Options{}), log, opts...)
	require.NoError(t, err)
	return o
}

func outcomes(reports []StageReport) map[string]Outcome {
	out := make(map[string]Outcome, len(reports))
	for _, r := range reports {
		out[r.Name] = r.Outcome
	}
	return out
}

var (
	aiMatches = []ai.AIMatch{
		{ID: 19, Title: "AI Engineer", MatchScore: 88, Explanation: "maths"},
		{ID: 18, Title: "Space Systems Engineer", MatchScore: 80, Explanation: "physics"},
	}
	judgeMatches = []ai.AIMatch{
		{ID: 18, Title: "Space Systems Engineer", MatchScore: 93, Explanation: "best", Analysis: "both sets"},
	}
)

func TestRunPrefersJudge(t *testing.T) {
	matcher := &fakeMatcher{matches: aiMatches}
	judge := &fakeJudge{matches: judgeMatches}
	o := newOrchestrator(t, zap.NewNop(), WithAI(matcher, judge))

	result, err := o.Run(context.Background(), scenarioProfile(t))
	require.NoError(t, err)

	assert.Equal(t, SourceJudge, result.Source)
	assert.Equal(t, Complete, result.State)
	assert.Empty(t, result.Warnings)
	assert.Len(t, result.Manual, matching.DefaultLimit)
	assert.Equal(t, aiMatches, judge.ai)
	assert.Equal(t, result.Manual, judge.manual)

	_, err = uuid.Parse(result.SessionID)
	assert.NoError(t, err)

	recs := result.Recommendations()
	require.Len(t, recs, 1)
	assert.Equal(t, 18, recs[0].ID)
	assert.Equal(t, "both sets", recs[0].Analysis)
	assert.Equal(t, SourceJudge, recs[0].Source)

	assert.Equal(t, map[string]Outcome{
		StageManual: OutcomeDone,
		StageAI:     OutcomeDone,
		StageJudge:  OutcomeDone,
	}, outcomes(result.Stages))
}

func TestRunWithoutCredentials(t *testing.T) {
	o := newOrchestrator(t, zap.NewNop(), WithAIUnavailable("GEMINI_API_KEY is not set"))
	assert.False(t, o.AIAvailable())

	result, err := o.Run(context.Background(), scenarioProfile(t))
	require.NoError(t, err)

	assert.Equal(t, SourceManual, result.Source)
	assert.Equal(t, []string{WarningAIUnavailable}, result.Warnings)
	assert.Equal(t, []int{3, 18, 14, 19, 26, 27}, recIDs(result.Recommendations()))
	assert.Equal(t, OutcomeDisabled, outcomes(result.Stages)[StageAI])
	assert.Equal(t, OutcomeDisabled, outcomes(result.Stages)[StageJudge])

	statuses := o.Stages()
	require.Len(t, statuses, 3)
	assert.Equal(t, "GEMINI_API_KEY is not set", statuses[1].Reason)
	assert.Equal(t, "24", statuses[0].Details["max_score"])
}

func TestRunFallsBackToManualOnParseError(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	matcher := &fakeMatcher{err: &ai.ResponseParseError{Stage: "matcher", Reason: "missing career_matches key"}}
	judge := &fakeJudge{matches: judgeMatches}
	o := newOrchestrator(t, zap.New(core), WithAI(matcher, judge))

	result, err := o.Run(context.Background(), scenarioProfile(t))
	require.NoError(t, err)

	assert.Equal(t, SourceManual, result.Source)
	assert.Equal(t, []string{WarningAIFailed}, result.Warnings)
	assert.Zero(t, judge.calls, "judge must not run on incomplete input")
	assert.NotEmpty(t, result.Recommendations())

	stages := outcomes(result.Stages)
	assert.Equal(t, OutcomeFailed, stages[StageAI])
	assert.Equal(t, OutcomeSkipped, stages[StageJudge])

	entries := observed.FilterMessage("stage failed; continuing without it").All()
	require.Len(t, entries, 1)
	assert.Equal(t, result.SessionID, entries[0].ContextMap()[logger.FieldSession])
	assert.Equal(t, StageAI, entries[0].ContextMap()[logger.FieldStage])
}

func TestRunSkipsJudgeWhenAIIsEmpty(t *testing.T) {
	matcher := &fakeMatcher{matches: []ai.AIMatch{}}
	judge := &fakeJudge{matches: judgeMatches}
	o := newOrchestrator(t, zap.NewNop(), WithAI(matcher, judge))

	result, err := o.Run(context.Background(), scenarioProfile(t))
	require.NoError(t, err)

	assert.Zero(t, judge.calls)
	assert.Equal(t, SourceManual, result.Source)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, result.Manual[0].Career.ID, result.Recommendations()[0].ID)
}

func TestRunSkipsJudgeWhenManualIsEmpty(t *testing.T) {
	matcher := &fakeMatcher{matches: aiMatches}
	judge := &fakeJudge{matches: judgeMatches}
	o := newOrchestrator(t, zap.NewNop(), WithAI(matcher, judge))

	result, err := o.Run(context.Background(), &profile.Profile{})
	require.NoError(t, err)

	assert.Empty(t, result.Manual)
	assert.Zero(t, judge.calls)
	assert.Equal(t, SourceAI, result.Source)
	assert.Equal(t, 19, result.Recommendations()[0].ID)
}

func TestRunJudgeFailureKeepsAIResult(t *testing.T) {
	matcher := &fakeMatcher{matches: aiMatches}
	judge := &fakeJudge{err: &ai.ExternalServiceError{Provider: "gemini", Attempts: 2, Err: errors.New("503")}}
	o := newOrchestrator(t, zap.NewNop(), WithAI(matcher, judge))

	result, err := o.Run(context.Background(), scenarioProfile(t))
	require.NoError(t, err)

	assert.Equal(t, SourceAI, result.Source)
	assert.Equal(t, []string{WarningAIFailed}, result.Warnings)
	assert.Equal(t, OutcomeFailed, outcomes(result.Stages)[StageJudge])
}

func TestRunWithJudgeDisabled(t *testing.T) {
	matcher := &fakeMatcher{matches: aiMatches}
	judge := &fakeJudge{matches: judgeMatches}
	o := newOrchestrator(t, zap.NewNop(), WithAI(matcher, judge), WithJudgeDisabled("disabled by configuration"))

	result, err := o.Run(context.Background(), scenarioProfile(t))
	require.NoError(t, err)

	assert.Zero(t, judge.calls)
	assert.Equal(t, SourceAI, result.Source)
	assert.Empty(t, result.Warnings)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	matcher := &fakeMatcher{err: &ai.ExternalServiceError{Provider: "gemini", Attempts: 1, Err: context.Canceled}}
	o := newOrchestrator(t, zap.NewNop(), WithAI(matcher, nil))

	_, err := o.Run(ctx, scenarioProfile(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunRejectsInvalidProfile(t *testing.T) {
	o := newOrchestrator(t, zap.NewNop())

	_, err := o.Run(context.Background(), &profile.Profile{Interests: []string{"a", "b", "c", "d"}})
	assert.Error(t, err)

	_, err = o.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestNewRejectsEmptyCatalog(t *testing.T) {
	_, err := New(nil, nil, nil)
	assert.ErrorIs(t, err, catalog.ErrCatalogLoad)
}

func TestRunSessionsAreIndependent(t *testing.T) {
	o := newOrchestrator(t, zap.NewNop())

	first, err := o.Run(context.Background(), scenarioProfile(t))
	require.NoError(t, err)
	second, err := o.Run(context.Background(), scenarioProfile(t))
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
	assert.Equal(t, first.Manual, second.Manual)
}

func TestResultJSON(t *testing.T) {
	o := newOrchestrator(t, zap.NewNop())

	result, err := o.Run(context.Background(), scenarioProfile(t))
	require.NoError(t, err)

	payload, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "complete", decoded["state"])
	assert.Equal(t, "manual", decoded["source"])
}

func TestManualRecommendationExplains(t *testing.T) {
	o := newOrchestrator(t, zap.NewNop())

	result, err := o.Run(context.Background(), scenarioProfile(t))
	require.NoError(t, err)

	recs := result.Recommendations()
	space := recs[1]
	assert.Equal(t, 18, space.ID)
	assert.Equal(t, 46, space.MatchScore)
	assert.Equal(t, []string{catalog.SDGLabel(9)}, space.MatchingSDGs)
	assert.Contains(t, space.Explanation, "interests: Physics, Mathematics")
}

func recIDs(recs []Recommendation) []int {
	out := make([]int, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}
