package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/catalog"
	"github.com/spigell/career-compass/internal/profile"
)

const (
	PromptContinue  = "Continue"
	PromptStartOver = "Start over"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer the questionnaire interactively and get career matches",
	Run: func(_ *cobra.Command, _ []string) {
		quiz()
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)
}

func quiz() {
	ctx := context.Background()

	logger, config := bootstrap()
	c := loadCatalog(config, logger)
	orchestrator := newOrchestrator(ctx, config, c, logger)

	desired := config.Matching.UseDesiredSkills
	p := &profile.Profile{}

	for step := profile.StepInterests; step != profile.StepResults; {
		var err error
		switch step {
		case profile.StepInterests:
			err = pickTags("Pick 3 interests", c.Interests(), &p.Interests, p.ToggleInterest)
		case profile.StepSkills:
			err = pickTags("Pick 3 skills you have", c.Skills(), &p.CurrentSkills, p.ToggleCurrentSkill)
			if err == nil && desired {
				err = pickTags("Pick 3 skills you want to develop", c.Skills(), &p.DesiredSkills, p.ToggleDesiredSkill)
			}
		case profile.StepValues:
			err = pickSDGs(p)
		}
		if err != nil {
			if errors.Is(err, errStartOver) {
				p.Reset()
				step = profile.StepInterests
				continue
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		next := p.Next(step, desired)
		if next == step {
			logger.Warn("step is not complete yet", zap.Stringer("step", step))
			continue
		}
		step = next
	}

	result, err := orchestrator.Run(ctx, p)
	if err != nil {
		logger.Fatal("matching failed", zap.Error(err))
	}

	if err := present(result, logger, false); err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}
}

var errStartOver = errors.New("start over requested")

// pickTags lets the user toggle tags category by category until Continue.
func pickTags(label string, taxonomy catalog.Taxonomy, selected *[]string, toggle func(string) bool) error {
	for {
		items := make([]string, 0, len(taxonomy)+2)
		for _, category := range taxonomy {
			items = append(items, category.Name)
		}
		items = append(items, PromptContinue, PromptStartOver)

		categoryPrompt := promptui.Select{
			Label: fmt.Sprintf("%s (%d/%d selected: %v)", label, len(*selected), profile.MaxSelections, *selected),
			Items: items,
			Size:  len(items),
		}

		_, choice, err := categoryPrompt.Run()
		if err != nil {
			return err
		}

		switch choice {
		case PromptContinue:
			return nil
		case PromptStartOver:
			return errStartOver
		}

		category, ok := taxonomy.Find(choice)
		if !ok {
			return fmt.Errorf("unknown category %q", choice)
		}

		if err := pickFromCategory(category, selected, toggle); err != nil {
			return err
		}
	}
}

func pickFromCategory(category catalog.Category, selected *[]string, toggle func(string) bool) error {
	for {
		items := make([]string, 0, len(category.Tags)+1)
		for _, tag := range category.Tags {
			items = append(items, checkbox(contains(*selected, tag))+tag)
		}
		items = append(items, PromptBack)

		tagPrompt := promptui.Select{
			Label: category.Name,
			Items: items,
			Size:  len(items),
		}

		idx, _, err := tagPrompt.Run()
		if err != nil {
			return err
		}

		if idx == len(category.Tags) {
			return nil
		}

		if !toggle(category.Tags[idx]) {
			fmt.Printf("You can pick at most %d. Unselect one first.\n", profile.MaxSelections)
		}
	}
}

func pickSDGs(p *profile.Profile) error {
	goals := catalog.SDGs()
	for {
		items := make([]string, 0, len(goals)+2)
		for _, goal := range goals {
			items = append(items, checkbox(containsInt(p.SDGs, goal.ID))+catalog.SDGLabel(goal.ID))
		}
		items = append(items, PromptContinue, PromptStartOver)

		sdgPrompt := promptui.Select{
			Label: fmt.Sprintf("Pick up to %d goals you care about", profile.MaxSelections),
			Items: items,
			Size:  10,
		}

		idx, choice, err := sdgPrompt.Run()
		if err != nil {
			return err
		}

		switch choice {
		case PromptContinue:
			return nil
		case PromptStartOver:
			return errStartOver
		}

		if !p.ToggleSDG(goals[idx].ID) {
			fmt.Printf("You can pick at most %d. Unselect one first.\n", profile.MaxSelections)
		}
	}
}

func checkbox(checked bool) string {
	if checked {
		return "[x] "
	}
	return "[ ] "
}

func contains(items []string, item string) bool {
	for _, i := range items {
		if i == item {
			return true
		}
	}
	return false
}

func containsInt(items []int, item int) bool {
	for _, i := range items {
		if i == item {
			return true
		}
	}
	return false
}
