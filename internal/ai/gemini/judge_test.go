package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/matching"
)

func judgeInputs(t *testing.T) ([]matching.ScoredCandidate, []ai.AIMatch) {
	t.Helper()
	c := defaultCatalog(t)
	scorer := matching.New(matching.Options{UseDesiredSkills: true})

	var manual []matching.ScoredCandidate
	for _, id := range []int{18, 19} {
		record, ok := c.FindByID(id)
		require.True(t, ok)
		manual = append(manual, scorer.Score(testProfile(t), record))
	}

	suggested := []ai.AIMatch{
		{ID: 19, Title: "AI Engineer", MatchScore: 90, Explanation: "Maths."},
		{ID: 16, Title: "Environmental Data Scientist", MatchScore: 70, Explanation: "Data."},
	}
	return manual, suggested
}

const judgeResponse = `{
  "career_matches": [
    {
      "id": 16,
      "title": "Environmental Data Scientist",
      "match_score": 64,
      "explanation": "Data for climate.",
      "analysis": "Only the counselor listed it, at rank 2."
    },
    {
      "id": 18,
      "title": "Space Systems Engineer",
      "match_score": 95,
      "explanation": "Best overall fit.",
      "analysis": "Ranked first by the algorithm, absent from the counselor set.",
      "matching_sdgs": ["9"]
    },
    {
      "id": 7,
      "title": "Waste Management Engineer",
      "match_score": 50,
      "explanation": "Not in either set.",
      "analysis": "Invented."
    }
  ]
}`

func TestJudgeFusesBothSets(t *testing.T) {
	manual, suggested := judgeInputs(t)
	stub := &stubGenerator{response: judgeResponse}
	judge := NewJudge(stub, Options{UseDesiredSkills: true}, zap.NewNop())

	matches, err := judge.Judge(context.Background(), testProfile(t), manual, suggested)
	require.NoError(t, err)
	require.Len(t, matches, 2, "ids outside both inputs are dropped")

	assert.Equal(t, 18, matches[0].ID)
	assert.Equal(t, 16, matches[1].ID)
	assert.NotEmpty(t, matches[0].Analysis)
	assert.Equal(t, manual[0].Career.Description, matches[0].Description)

	require.Len(t, stub.requests, 1)
	req := stub.requests[0]
	assert.Contains(t, req.System, "Do not trust the numeric scores")
	assert.Contains(t, req.Message, `"title": "Environmental Data Scientist"`)
	assert.Contains(t, req.Message, `"rank": 1`)
	assert.Contains(t, req.Message, "Industry, Innovation & Infrastructure")
	assert.NotContains(t, req.Message, "{{")
	assert.Contains(t, req.Schema.Properties[matchesKey].Items.Required, "analysis")
}

func TestJudgeRequiresBothInputs(t *testing.T) {
	manual, suggested := judgeInputs(t)
	stub := &stubGenerator{response: judgeResponse}
	judge := NewJudge(stub, Options{}, zap.NewNop())

	_, err := judge.Judge(context.Background(), testProfile(t), nil, suggested)
	assert.ErrorIs(t, err, ai.ErrInsufficientInput)

	_, err = judge.Judge(context.Background(), testProfile(t), manual, []ai.AIMatch{})
	assert.ErrorIs(t, err, ai.ErrInsufficientInput)

	assert.Empty(t, stub.requests, "the service must not be called")
}

func TestJudgeRejectsMissingAnalysis(t *testing.T) {
	manual, suggested := judgeInputs(t)

	tests := []struct {
		name     string
		response string
	}{
		{
			name:     "analysis key absent",
			response: `{"career_matches": [{"id": 19, "title": "AI Engineer", "match_score": 80, "explanation": "x"}]}`,
		},
		{
			name:     "blank analysis",
			response: `{"career_matches": [{"id": 19, "title": "AI Engineer", "match_score": 80, "explanation": "x", "analysis": "   "}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			judge := NewJudge(&stubGenerator{response: tt.response}, Options{}, zap.NewNop())
			_, err := judge.Judge(context.Background(), testProfile(t), manual, suggested)

			var parseErr *ai.ResponseParseError
			require.True(t, errors.As(err, &parseErr), "expected ResponseParseError, got %v", err)
			assert.Equal(t, stageJudge, parseErr.Stage)
		})
	}
}

func TestJudgeMissingKeyIsParseError(t *testing.T) {
	manual, suggested := judgeInputs(t)
	judge := NewJudge(&stubGenerator{response: `{"ranking": []}`}, Options{}, zap.NewNop())

	_, err := judge.Judge(context.Background(), testProfile(t), manual, suggested)
	assert.ErrorIs(t, err, ai.ErrResponseParse)
}
