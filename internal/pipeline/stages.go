package pipeline

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/matching"
)

const (
	StageManual = "manual"
	StageAI     = "ai"
	StageJudge  = "judge"
)

type manualStage struct {
	matcher *matching.Matcher
}

// NewManual creates the deterministic matching stage. It cannot be disabled.
func NewManual(matcher *matching.Matcher) Stage {
	return &manualStage{matcher: matcher}
}

func (st *manualStage) Name() string { return StageManual }

func (st *manualStage) Disable(string) {}

func (st *manualStage) IsEnabled() bool { return true }

func (st *manualStage) Apply(_ context.Context, s *session) (Step, error) {
	s.manual = st.matcher.Match(s.profile, s.catalog)
	s.state = ManualDone

	if len(s.manual) > 0 {
		s.logger.Debug("deterministic ranking",
			zap.Int("top_id", s.manual[0].Career.ID),
			zap.Int("top_score", s.manual[0].Score),
		)
	}

	return Step{Produced: len(s.manual)}, nil
}

func (st *manualStage) Status() Status {
	opts := st.matcher.Options()
	return Status{
		Name:    st.Name(),
		Enabled: true,
		Details: map[string]string{
			"limit":              strconv.Itoa(opts.Limit),
			"backfill":           strconv.FormatBool(opts.Backfill),
			"use_desired_skills": strconv.FormatBool(opts.UseDesiredSkills),
			"max_score":          strconv.Itoa(st.matcher.MaxScore()),
		},
	}
}

type aiStage struct {
	enabled bool
	reason  string
	matcher ai.Matcher
}

// NewAI creates the model matching stage. A nil matcher yields a disabled stage.
func NewAI(matcher ai.Matcher) Stage {
	st := &aiStage{enabled: true, matcher: matcher}
	if matcher == nil {
		st.Disable("ai matcher is not configured")
	}
	return st
}

func (st *aiStage) Name() string { return StageAI }

func (st *aiStage) Disable(reason string) {
	st.enabled = false
	st.reason = reason
}

func (st *aiStage) IsEnabled() bool { return st.enabled }

func (st *aiStage) Apply(ctx context.Context, s *session) (Step, error) {
	matches, err := st.matcher.Match(ctx, s.profile, s.catalog)
	if err != nil {
		return Step{}, err
	}

	s.suggested = matches
	s.state = AIDone

	return Step{Produced: len(matches)}, nil
}

func (st *aiStage) Status() Status {
	return Status{Name: st.Name(), Enabled: st.enabled, Reason: st.reason}
}

type judgeStage struct {
	enabled bool
	reason  string
	judge   ai.Judge
}

// NewJudge creates the arbitration stage. A nil judge yields a disabled stage.
func NewJudge(judge ai.Judge) Stage {
	st := &judgeStage{enabled: true, judge: judge}
	if judge == nil {
		st.Disable("judge is not configured")
	}
	return st
}

func (st *judgeStage) Name() string { return StageJudge }

func (st *judgeStage) Disable(reason string) {
	st.enabled = false
	st.reason = reason
}

func (st *judgeStage) IsEnabled() bool { return st.enabled }

func (st *judgeStage) Apply(ctx context.Context, s *session) (Step, error) {
	if len(s.manual) == 0 || len(s.suggested) == 0 {
		return Step{Skipped: fmt.Sprintf("needs both result sets (manual=%d, ai=%d)", len(s.manual), len(s.suggested))}, nil
	}

	matches, err := st.judge.Judge(ctx, s.profile, s.manual, s.suggested)
	if err != nil {
		return Step{}, err
	}

	s.judged = matches
	s.state = JudgeDone

	return Step{Produced: len(matches)}, nil
}

func (st *judgeStage) Status() Status {
	return Status{Name: st.Name(), Enabled: st.enabled, Reason: st.reason}
}
