package gemini

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spigell/career-compass/internal/catalog"
	"github.com/spigell/career-compass/internal/profile"
)

var (
	//go:embed prompts/matcher_system.md
	matcherSystemTemplate string
	//go:embed prompts/matcher_user.md
	matcherUserTemplate string
	//go:embed prompts/judge_system.md
	judgeSystemTemplate string
	//go:embed prompts/judge_user.md
	judgeUserTemplate string
)

const (
	skillsFormatCurrent = `{"current": ["skill1", "skill2"]}`
	skillsFormatBoth    = `{"current": ["skill1", "skill2"], "desired": ["skill3"]}`
)

// careerPrompt is what the model sees of a catalog record.
type careerPrompt struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	SDGs        []string `json:"sdgs"`
}

func render(template string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for key, value := range values {
		pairs = append(pairs, "{{"+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// profileValues fills the placeholders shared by both user messages.
func profileValues(p *profile.Profile, desiredSkills bool, limit int) map[string]string {
	values := map[string]string{
		"LIMIT":               strconv.Itoa(limit),
		"INTERESTS":           joinOrNone(p.Interests, ", "),
		"CURRENT_SKILLS":      joinOrNone(p.CurrentSkills, ", "),
		"SDGS":                joinOrNone(catalog.SDGLabels(p.SDGs), "; "),
		"DESIRED_SKILLS_LINE": "",
		"SKILLS_FORMAT":       skillsFormatCurrent,
	}
	if desiredSkills {
		values["DESIRED_SKILLS_LINE"] = "Desired Skills: " + joinOrNone(p.DesiredSkills, ", ") + "\n"
		values["SKILLS_FORMAT"] = skillsFormatBoth
	}
	return values
}

func joinOrNone(items []string, sep string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, sep)
}

func careersJSON(c *catalog.Catalog, withDescriptions bool) (string, error) {
	careers := make([]careerPrompt, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		record := c.At(i)
		entry := careerPrompt{
			ID:    record.ID,
			Title: record.Title,
			SDGs:  catalog.SDGLabels(record.SDGs),
		}
		if withDescriptions {
			entry.Description = record.Description
		}
		careers = append(careers, entry)
	}

	payload, err := marshalPrompt(careers)
	if err != nil {
		return "", fmt.Errorf("marshal careers: %w", err)
	}
	return payload, nil
}

// marshalPrompt indents v for the model, leaving "&" in SDG names unescaped.
func marshalPrompt(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
