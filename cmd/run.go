package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/pipeline"
	"github.com/spigell/career-compass/internal/report"
)

const (
	PromptDetails = "Show career details"
	PromptCompare = "Compare matching methods"
	PromptToFile  = "Dump result to file"
	PromptExit    = "Exit"
	PromptBack    = "back"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptDetails, PromptCompare, PromptToFile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Match the configured profile against the career catalog",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringSlice("interests", nil, "up to 3 interests (overrides profile.interests)")
	runCmd.Flags().StringSlice("current-skills", nil, "up to 3 current skills (overrides profile.current-skills)")
	runCmd.Flags().StringSlice("desired-skills", nil, "up to 3 skills to develop (overrides profile.desired-skills)")
	runCmd.Flags().IntSlice("sdgs", nil, "up to 3 SDG ids, 1-17 (overrides profile.sdgs)")
	runCmd.Flags().BoolP("auto-approve", "y", false, "print the result and exit without the action menu")

	viper.BindPFlag("profile.interests", runCmd.Flags().Lookup("interests"))
	viper.BindPFlag("profile.current-skills", runCmd.Flags().Lookup("current-skills"))
	viper.BindPFlag("profile.desired-skills", runCmd.Flags().Lookup("desired-skills"))
	viper.BindPFlag("profile.sdgs", runCmd.Flags().Lookup("sdgs"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, config := bootstrap()

	logger.Info("starting the career-compass", zap.String("version", version))

	p, err := configuredProfile(config)
	if err != nil {
		logger.Fatal("reading the profile",
			zap.Error(err),
			zap.String("hint", "fill the profile section of the config or pass --interests/--current-skills/--sdgs; use 'quiz' for the interactive form"),
		)
	}

	if p.IsEmpty() {
		logger.Warn("profile is empty; only backfilled careers can be shown")
	}

	c := loadCatalog(config, logger)
	orchestrator := newOrchestrator(ctx, config, c, logger)

	result, err := orchestrator.Run(ctx, p)
	if err != nil {
		logger.Fatal("matching failed", zap.Error(err))
	}

	autoApprove := cmd.Flag("auto-approve").Value.String() == "true"
	if err := present(result, logger, autoApprove); err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}
}

// present prints the result and loops over the action menu until exit.
func present(result *pipeline.Result, logger *zap.Logger, autoApprove bool) error {
	if err := report.Render(os.Stdout, result); err != nil {
		return err
	}

	if autoApprove {
		return nil
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		if err := handleAction(action, logger, result); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}
	}
}

func handleAction(action string, logger *zap.Logger, result *pipeline.Result) error {
	switch action {
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	case PromptDetails:
		return showDetails(result.Recommendations())
	case PromptCompare:
		pretty, _ := json.MarshalIndent(report.Compare(result), "", "  ")
		logger.Info(string(pretty), zap.String("chosen", string(result.Source)))
		return nil
	case PromptToFile:
		filename, err := report.DumpToTmpFile(result)
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func showDetails(recs []pipeline.Recommendation) error {
	if len(recs) == 0 {
		fmt.Println("Nothing to show.")
		return nil
	}

	for {
		items := make([]string, 0, len(recs)+1)
		for _, rec := range recs {
			items = append(items, fmt.Sprintf("%d %s (%d%%)", rec.ID, rec.Title, rec.MatchScore))
		}

		careerPrompt := promptui.Select{
			Label: "Choose a career and press ENTER",
			Items: append(items, PromptBack),
			Size:  len(items) + 1,
		}

		_, selected, err := careerPrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		id, err := strconv.Atoi(strings.Split(selected, " ")[0])
		if err != nil {
			return fmt.Errorf("there is no such career %q", selected)
		}

		for _, rec := range recs {
			if rec.ID == id {
				fmt.Printf("\n%s\n\n", report.Details(rec))
			}
		}
	}
}
