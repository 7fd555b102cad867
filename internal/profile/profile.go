package profile

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxSelections caps every selection list of a profile.
const MaxSelections = 3

// Profile holds the questionnaire selections of one session.
// The zero value is an empty profile ready for toggling.
type Profile struct {
	Interests     []string `json:"interests" mapstructure:"interests" validate:"max=3,unique,dive,required"`
	CurrentSkills []string `json:"current_skills" mapstructure:"current-skills" validate:"max=3,unique,dive,required"`
	DesiredSkills []string `json:"desired_skills" mapstructure:"desired-skills" validate:"max=3,unique,dive,required"`
	SDGs          []int    `json:"sdgs" mapstructure:"sdgs" validate:"max=3,unique,dive,min=1,max=17"`
}

var validate = validator.New()

// New builds a profile from bulk input such as a config file or a request body.
// Values are trimmed; over-cap or duplicated input is rejected instead of truncated.
func New(interests, currentSkills, desiredSkills []string, sdgs []int) (*Profile, error) {
	p := &Profile{
		Interests:     trimAll(interests),
		CurrentSkills: trimAll(currentSkills),
		DesiredSkills: trimAll(desiredSkills),
		SDGs:          slices.Clone(sdgs),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks the cardinality caps, duplicates and SDG range.
func (p *Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	return nil
}

// ToggleInterest adds the interest, or removes it when already selected.
// It reports whether the profile changed; adding beyond the cap is a no-op.
func (p *Profile) ToggleInterest(interest string) bool {
	return toggle(&p.Interests, strings.TrimSpace(interest))
}

func (p *Profile) ToggleCurrentSkill(skill string) bool {
	return toggle(&p.CurrentSkills, strings.TrimSpace(skill))
}

func (p *Profile) ToggleDesiredSkill(skill string) bool {
	return toggle(&p.DesiredSkills, strings.TrimSpace(skill))
}

// ToggleSDG toggles a goal id. Ids outside 1..17 are ignored.
func (p *Profile) ToggleSDG(id int) bool {
	if id < 1 || id > 17 {
		return false
	}
	return toggle(&p.SDGs, id)
}

// Reset clears every selection.
func (p *Profile) Reset() {
	p.Interests = nil
	p.CurrentSkills = nil
	p.DesiredSkills = nil
	p.SDGs = nil
}

// IsEmpty reports whether nothing is selected.
func (p *Profile) IsEmpty() bool {
	return p == nil || len(p.Interests)+len(p.CurrentSkills)+len(p.DesiredSkills)+len(p.SDGs) == 0
}

// Clone returns a deep copy so that matchers can never mutate the session profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return &Profile{}
	}
	return &Profile{
		Interests:     slices.Clone(p.Interests),
		CurrentSkills: slices.Clone(p.CurrentSkills),
		DesiredSkills: slices.Clone(p.DesiredSkills),
		SDGs:          slices.Clone(p.SDGs),
	}
}

func toggle[T comparable](list *[]T, item T) bool {
	var zero T
	if item == zero {
		return false
	}

	if idx := slices.Index(*list, item); idx >= 0 {
		*list = slices.Delete(*list, idx, idx+1)
		return true
	}

	if len(*list) >= MaxSelections {
		return false
	}

	*list = append(*list, item)
	return true
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
