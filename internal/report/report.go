// Package report renders pipeline results for the terminal and for files.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spigell/career-compass/internal/pipeline"
)

// Render writes the chosen ranking as an aligned table followed by warnings.
func Render(w io.Writer, result *pipeline.Result) error {
	if result == nil {
		return fmt.Errorf("result is required")
	}

	recs := result.Recommendations()

	fmt.Fprintf(w, "Session %s, source: %s\n\n", result.SessionID, result.Source)

	if len(recs) == 0 {
		fmt.Fprintln(w, "No career matches your selections. Try picking different interests or values.")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tID\tCAREER\tMATCH\tSDGS")
		for i, rec := range recs {
			fmt.Fprintf(tw, "%d\t%d\t%s\t%d%%\t%s\n", i+1, rec.ID, rec.Title, rec.MatchScore, shortSDGs(rec.MatchingSDGs))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "\nwarning: %s\n", warning)
	}

	return nil
}

// Details renders a single recommendation with its explanation.
func Details(rec pipeline.Recommendation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (id %d), match %d%%\n", rec.Title, rec.ID, rec.MatchScore)
	if rec.Description != "" {
		fmt.Fprintf(&b, "%s\n", rec.Description)
	}
	if rec.Explanation != "" {
		fmt.Fprintf(&b, "\nWhy: %s\n", rec.Explanation)
	}
	if rec.Analysis != "" {
		fmt.Fprintf(&b, "Analysis: %s\n", rec.Analysis)
	}

	writeList(&b, "Interests", rec.MatchingInterests)
	writeList(&b, "Current skills", rec.MatchingSkills.Current)
	writeList(&b, "Skills to develop", rec.MatchingSkills.Desired)
	writeList(&b, "SDGs", rec.MatchingSDGs)

	return strings.TrimRight(b.String(), "\n")
}

// Compare lists every stage's ranking side by side, keyed by stage name.
func Compare(result *pipeline.Result) map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	if result == nil {
		return report
	}

	for _, c := range result.Manual {
		report[pipeline.StageManual] = append(report[pipeline.StageManual], map[string]string{
			"id":          strconv.Itoa(c.Career.ID),
			"title":       c.Career.Title,
			"score":       strconv.Itoa(c.Score),
			"match score": strconv.Itoa(c.MatchScore),
		})
	}
	for _, m := range result.AI {
		report[pipeline.StageAI] = append(report[pipeline.StageAI], map[string]string{
			"id":          strconv.Itoa(m.ID),
			"title":       m.Title,
			"match score": strconv.Itoa(m.MatchScore),
		})
	}
	for _, m := range result.Judge {
		report[pipeline.StageJudge] = append(report[pipeline.StageJudge], map[string]string{
			"id":          strconv.Itoa(m.ID),
			"title":       m.Title,
			"match score": strconv.Itoa(m.MatchScore),
			"analysis":    m.Analysis,
		})
	}

	return report
}

// DumpToTmpFile writes the full result as indented JSON and returns the file name.
func DumpToTmpFile(result *pipeline.Result) (string, error) {
	file, err := os.CreateTemp("", "career_matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, strings.Join(items, ", "))
}

// shortSDGs keeps "SDG 9" out of "SDG 9: Industry, Innovation & Infrastructure".
func shortSDGs(labels []string) string {
	short := make([]string, 0, len(labels))
	for _, label := range labels {
		if idx := strings.Index(label, ":"); idx != -1 {
			label = label[:idx]
		}
		short = append(short, label)
	}
	return strings.Join(short, ", ")
}
