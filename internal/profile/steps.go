package profile

// Step is a page of the questionnaire.
type Step int

const (
	StepInterests Step = iota + 1
	StepSkills
	StepValues
	StepResults
)

func (s Step) String() string {
	switch s {
	case StepInterests:
		return "interests"
	case StepSkills:
		return "skills"
	case StepValues:
		return "values"
	case StepResults:
		return "results"
	default:
		return "unknown"
	}
}

// Ready reports whether the selections allow leaving the given step.
// Interests and skills need full selections; values need at least one goal.
func (p *Profile) Ready(step Step, desiredSkills bool) bool {
	switch step {
	case StepInterests:
		return len(p.Interests) == MaxSelections
	case StepSkills:
		if desiredSkills && len(p.DesiredSkills) != MaxSelections {
			return false
		}
		return len(p.CurrentSkills) == MaxSelections
	case StepValues:
		return len(p.SDGs) > 0
	default:
		return false
	}
}

// Next returns the step following s once s is ready, or s itself.
func (p *Profile) Next(step Step, desiredSkills bool) Step {
	if step >= StepResults || !p.Ready(step, desiredSkills) {
		return step
	}
	return step + 1
}
