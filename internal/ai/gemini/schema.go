package gemini

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/catalog"
	"github.com/spigell/career-compass/internal/utils"
)

const matchesKey = "career_matches"

var (
	//go:embed schemas/career_matches.json
	matchesSchemaSource string
	//go:embed schemas/judge_matches.json
	judgeSchemaSource string

	matchesSchema = mustSchema("career_matches.json", matchesSchemaSource)
	judgeSchema   = mustSchema("judge_matches.json", judgeSchemaSource)
)

func mustSchema(name, source string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(fmt.Sprintf("compile %s: %v", name, err))
	}
	return schema
}

// responseSchema mirrors the JSON schema for Gemini's structured output mode.
func responseSchema(desiredSkills, withAnalysis bool) *genai.Schema {
	str := &genai.Schema{Type: genai.TypeString}
	strList := &genai.Schema{Type: genai.TypeArray, Items: str}

	skills := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: map[string]*genai.Schema{"current": strList},
		Required:   []string{"current"},
	}
	if desiredSkills {
		skills.Properties["desired"] = strList
		skills.Required = append(skills.Required, "desired")
	}

	item := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":                 {Type: genai.TypeInteger},
			"title":              str,
			"description":        str,
			"match_score":        {Type: genai.TypeInteger, Minimum: genai.Ptr(1.0), Maximum: genai.Ptr(100.0)},
			"explanation":        str,
			"matching_interests": strList,
			"matching_skills":    skills,
			"matching_sdgs":      strList,
		},
		Required: []string{
			"id", "title", "description", "match_score", "explanation",
			"matching_interests", "matching_skills", "matching_sdgs",
		},
	}
	if withAnalysis {
		item.Properties["analysis"] = str
		item.Required = append(item.Required, "analysis")
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			matchesKey: {Type: genai.TypeArray, Items: item},
		},
		Required: []string{matchesKey},
	}
}

type matchesEnvelope struct {
	CareerMatches []ai.AIMatch `mapstructure:"career_matches"`
}

// parseMatches is the parse boundary for both stages: anything that does not
// satisfy the schema is rejected here as an ai.ResponseParseError.
func parseMatches(stage, raw string, schema *gojsonschema.Schema, maxLogLen int) ([]ai.AIMatch, error) {
	cleaned := extractJSON(raw)
	preview := utils.TruncateForLog(cleaned, maxLogLen)

	var doc map[string]any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &ai.ResponseParseError{Stage: stage, Reason: "invalid JSON", Raw: preview, Err: err}
	}

	if _, ok := doc[matchesKey]; !ok {
		return nil, &ai.ResponseParseError{Stage: stage, Reason: "missing " + matchesKey + " key", Raw: preview}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader([]byte(cleaned)))
	if err != nil {
		return nil, &ai.ResponseParseError{Stage: stage, Reason: "schema validation", Raw: preview, Err: err}
	}

	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			violations = append(violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return nil, &ai.ResponseParseError{
			Stage:  stage,
			Reason: "contract violation (" + strings.Join(violations, "; ") + ")",
			Raw:    preview,
		}
	}

	var envelope matchesEnvelope
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &envelope,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create decoder: %w", err)
	}

	if err := decoder.Decode(doc); err != nil {
		return nil, &ai.ResponseParseError{Stage: stage, Reason: "decode matches", Raw: preview, Err: err}
	}

	return envelope.CareerMatches, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

// sdgLabel renders whatever the model echoed ("9", "SDG 9", "SDG 9: ...") as a canonical label.
func sdgLabel(ref string) string {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		return catalog.SDGLabel(id)
	}
	if id, ok := catalog.ParseSDGRef(ref); ok {
		return catalog.SDGLabel(id)
	}
	return ref
}
