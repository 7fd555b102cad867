package pipeline

import (
	"context"
)

// Stage is a single step of a matching run. Stages are shared by concurrent
// runs, so everything a run produces lives in the session, never in the stage.
type Stage interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Apply(ctx context.Context, s *session) (Step, error)
}

// Step describes the result of executing a stage.
type Step struct {
	Produced int
	// Skipped explains why an enabled stage had nothing to do.
	Skipped string
}

// Status represents configuration-time information about a stage.
type Status struct {
	Name    string            `json:"name"`
	Enabled bool              `json:"enabled"`
	Reason  string            `json:"reason,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Outcome of a stage within one run.
type Outcome string

const (
	OutcomeDone     Outcome = "done"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeFailed   Outcome = "failed"
	OutcomeDisabled Outcome = "disabled"
)

// StageReport is what happened to a stage during one run.
type StageReport struct {
	Name     string  `json:"name"`
	Outcome  Outcome `json:"outcome"`
	Produced int     `json:"produced"`
	Reason   string  `json:"reason,omitempty"`
}

type statusProvider interface {
	Status() Status
}

// DisableByName marks a stage with the provided name as disabled while keeping it in the list.
func DisableByName(stages []Stage, name, reason string) {
	for _, stage := range stages {
		if stage.Name() == name {
			stage.Disable(reason)
		}
	}
}

// Describe returns status entries for the provided stages.
func Describe(stages []Stage) []Status {
	statuses := make([]Status, 0, len(stages))
	for _, stage := range stages {
		if reporter, ok := stage.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    stage.Name(),
			Enabled: stage.IsEnabled(),
		})
	}
	return statuses
}
