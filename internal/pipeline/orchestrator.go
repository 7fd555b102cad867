// Package pipeline runs the deterministic matcher, the model matcher and the
// judge in sequence and decides which ranking is shown.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/catalog"
	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/matching"
	"github.com/spigell/career-compass/internal/profile"
)

const (
	WarningAIUnavailable = "AI features unavailable"
	WarningAIFailed      = "AI matching failed"
)

// State is the progress of one run.
type State int

const (
	Pending State = iota
	ManualDone
	AIDone
	JudgeDone
	Complete
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case ManualDone:
		return "manual_done"
	case AIDone:
		return "ai_done"
	case JudgeDone:
		return "judge_done"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Source names the stage whose ranking was chosen.
type Source string

const (
	SourceJudge  Source = "judge"
	SourceAI     Source = "ai"
	SourceManual Source = "manual"
)

// session is the mutable state of one run.
type session struct {
	id      string
	profile *profile.Profile
	catalog *catalog.Catalog
	logger  *zap.Logger
	state   State

	manual    []matching.ScoredCandidate
	suggested []ai.AIMatch
	judged    []ai.AIMatch
	warnings  []string
}

func (s *session) warn(msg string) {
	if !slices.Contains(s.warnings, msg) {
		s.warnings = append(s.warnings, msg)
	}
}

// Result is everything a run produced. Manual is always present.
type Result struct {
	SessionID string                     `json:"session_id"`
	State     State                      `json:"state"`
	Source    Source                     `json:"source"`
	Manual    []matching.ScoredCandidate `json:"manual_matches"`
	AI        []ai.AIMatch               `json:"ai_matches"`
	Judge     []ai.AIMatch               `json:"judge_matches"`
	Warnings  []string                   `json:"warnings"`
	Stages    []StageReport              `json:"stages"`
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithAI enables the model stages. Either argument may be nil.
func WithAI(matcher ai.Matcher, judge ai.Judge) Option {
	return func(o *Orchestrator) {
		o.matcher = matcher
		o.judge = judge
	}
}

// WithAIUnavailable records why no model is configured. The reason is logged
// and every result carries WarningAIUnavailable.
func WithAIUnavailable(reason string) Option {
	return func(o *Orchestrator) {
		o.unavailable = reason
	}
}

// WithJudgeDisabled keeps the model matcher but turns arbitration off.
func WithJudgeDisabled(reason string) Option {
	return func(o *Orchestrator) {
		o.judgeOff = reason
	}
}

type Orchestrator struct {
	catalog     *catalog.Catalog
	stages      []Stage
	logger      *zap.Logger
	matcher     ai.Matcher
	judge       ai.Judge
	unavailable string
	judgeOff    string
}

// New builds an orchestrator over an immutable catalog. A nil or empty
// catalog is a catalog.LoadError.
func New(c *catalog.Catalog, manual *matching.Matcher, log *zap.Logger, opts ...Option) (*Orchestrator, error) {
	if c == nil || c.Len() == 0 {
		source := "<nil>"
		if c != nil {
			source = c.Source()
		}
		return nil, &catalog.LoadError{Source: source, Expected: "at least one career", Found: "an empty catalog"}
	}
	if manual == nil {
		manual = matching.New(matching.Options{})
	}
	if log == nil {
		log = zap.NewNop()
	}

	o := &Orchestrator{catalog: c, logger: log}
	for _, opt := range opts {
		opt(o)
	}

	o.stages = []Stage{NewManual(manual), NewAI(o.matcher), NewJudge(o.judge)}

	if o.unavailable != "" {
		DisableByName(o.stages, StageAI, o.unavailable)
		DisableByName(o.stages, StageJudge, o.unavailable)
	}
	if o.judgeOff != "" {
		DisableByName(o.stages, StageJudge, o.judgeOff)
	}

	return o, nil
}

func (o *Orchestrator) Catalog() *catalog.Catalog { return o.catalog }

// Stages reports the configured stages.
func (o *Orchestrator) Stages() []Status { return Describe(o.stages) }

// AIAvailable reports whether the model matcher will run.
func (o *Orchestrator) AIAvailable() bool {
	for _, stage := range o.stages {
		if stage.Name() == StageAI {
			return stage.IsEnabled()
		}
	}
	return false
}

// Run executes all stages for one profile. Model failures degrade the result
// to the deterministic ranking with a warning; only an invalid profile or a
// cancelled context are returned as errors.
func (o *Orchestrator) Run(ctx context.Context, p *profile.Profile) (*Result, error) {
	if p == nil {
		return nil, errors.New("profile is required")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := &session{
		id:      uuid.NewString(),
		profile: p.Clone(),
		catalog: o.catalog,
		state:   Pending,
	}
	s.logger = logger.WithSession(o.logger, s.id)

	if !o.AIAvailable() {
		s.warn(WarningAIUnavailable)
	}

	reports := make([]StageReport, 0, len(o.stages))
	for _, stage := range o.stages {
		log := logger.WithStage(s.logger, stage.Name())

		if !stage.IsEnabled() {
			reason := ""
			if reporter, ok := stage.(statusProvider); ok {
				reason = reporter.Status().Reason
			}
			log.Info("stage disabled", zap.String("reason", reason))
			reports = append(reports, StageReport{Name: stage.Name(), Outcome: OutcomeDisabled, Reason: reason})
			continue
		}

		step, err := stage.Apply(ctx, s)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("%s: %w", stage.Name(), ctxErr)
			}

			log.Warn("stage failed; continuing without it", zap.Error(err))
			s.warn(WarningAIFailed)
			reports = append(reports, StageReport{Name: stage.Name(), Outcome: OutcomeFailed, Reason: err.Error()})
			continue
		}

		if step.Skipped != "" {
			log.Info("stage skipped", zap.String("reason", step.Skipped))
			reports = append(reports, StageReport{Name: stage.Name(), Outcome: OutcomeSkipped, Reason: step.Skipped})
			continue
		}

		log.Info("stage finished", zap.Int("produced", step.Produced), zap.Stringer("state", s.state))
		reports = append(reports, StageReport{Name: stage.Name(), Outcome: OutcomeDone, Produced: step.Produced})
	}

	s.state = Complete

	result := &Result{
		SessionID: s.id,
		State:     s.state,
		Manual:    s.manual,
		AI:        s.suggested,
		Judge:     s.judged,
		Warnings:  s.warnings,
		Stages:    reports,
	}
	result.Source = result.pick()

	if result.Warnings == nil {
		result.Warnings = []string{}
	}

	s.logger.Info("matching completed",
		zap.String("source", string(result.Source)),
		zap.Int("manual", len(result.Manual)),
		zap.Int("ai", len(result.AI)),
		zap.Int("judge", len(result.Judge)),
	)

	return result, nil
}

// pick applies the answer priority: judge, then ai, then manual.
func (r *Result) pick() Source {
	switch {
	case len(r.Judge) > 0:
		return SourceJudge
	case len(r.AI) > 0:
		return SourceAI
	default:
		return SourceManual
	}
}
