package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/ai/gemini"
	"github.com/spigell/career-compass/internal/catalog"
	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/matching"
	"github.com/spigell/career-compass/internal/pipeline"
	"github.com/spigell/career-compass/internal/profile"
	"github.com/spigell/career-compass/internal/secrets"
)

const apiKeyEnv = "GEMINI_API_KEY"

// bootstrap builds the logger and reads the configuration shared by all commands.
func bootstrap() (*zap.Logger, *Config) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil {
		logger.Fatal("config is required")
	}

	if config.Matching == nil {
		config.Matching = &MatchingConfig{UseDesiredSkills: true, Limit: matching.DefaultLimit}
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}
	if config.Server == nil {
		config.Server = &ServerConfig{}
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return logger, config
}

func loadCatalog(config *Config, logger *zap.Logger) *catalog.Catalog {
	c, err := catalog.LoadFile(config.Catalog)
	if err != nil {
		logger.Fatal("loading the career catalog",
			zap.Error(err),
			zap.String("hint", "check the 'catalog' key, the --catalog flag or CAREER_COMPASS_CATALOG"),
		)
	}

	logger.Info("catalog loaded", zap.String("source", c.Source()), zap.Int("careers", c.Len()))
	return c
}

func matchingOptions(config *Config) matching.Options {
	return matching.Options{
		UseDesiredSkills: config.Matching.UseDesiredSkills,
		Backfill:         config.Matching.Backfill,
		Limit:            config.Matching.Limit,
	}
}

// configuredProfile validates the profile section of the configuration.
func configuredProfile(config *Config) (*profile.Profile, error) {
	p := config.Profile
	return profile.New(p.Interests, p.CurrentSkills, p.DesiredSkills, p.SDGs)
}

func newOrchestrator(ctx context.Context, config *Config, c *catalog.Catalog, logger *zap.Logger) *pipeline.Orchestrator {
	opts := []pipeline.Option{aiOption(ctx, config, logger)}
	if !config.AI.Judge {
		opts = append(opts, pipeline.WithJudgeDisabled("disabled by configuration"))
	}

	o, err := pipeline.New(c, matching.New(matchingOptions(config)), logger, opts...)
	if err != nil {
		logger.Fatal("creating the matching pipeline", zap.Error(err))
	}

	for _, status := range o.Stages() {
		logger.Debug("pipeline stage",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	return o
}

// aiOption wires the model stages, or records why they are unavailable.
// A missing credential never stops the program.
func aiOption(ctx context.Context, config *Config, logger *zap.Logger) pipeline.Option {
	cfg := config.AI
	if !cfg.Enabled {
		return pipeline.WithAIUnavailable("ai is disabled in configuration")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != gemini.Provider {
		logger.Fatal("unsupported ai provider", zap.String("provider", cfg.Provider))
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.Gemini.APIKeyFile,
		Value: cfg.Gemini.APIKey,
		Env:   apiKeyEnv,
	})
	if err != nil {
		fields := []zap.Field{zap.Error(err)}
		if errors.Is(err, secrets.ErrNotConfigured) {
			fields = append(fields, zap.String("hint", "set ai.gemini.api-key-file or the GEMINI_API_KEY environment variable"))
		}
		logger.Warn(pipeline.WarningAIUnavailable, fields...)
		return pipeline.WithAIUnavailable(err.Error())
	}

	genLogger := logger.With(
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
		zap.Duration("ai_timeout", cfg.Timeout),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, gemini.Config{
		Model:       cfg.Gemini.Model,
		MaxRetries:  cfg.Gemini.MaxRetries,
		Timeout:     cfg.Timeout,
		Temperature: cfg.Temperature,
	}, genLogger)
	if err != nil {
		logger.Warn(pipeline.WarningAIUnavailable, zap.Error(err))
		return pipeline.WithAIUnavailable(err.Error())
	}

	opts := gemini.Options{
		Limit:               config.Matching.Limit,
		IncludeDescriptions: cfg.IncludeDescriptions,
		UseDesiredSkills:    config.Matching.UseDesiredSkills,
		MaxLogLength:        cfg.Gemini.MaxLogLength,
	}

	return pipeline.WithAI(
		gemini.NewMatcher(generator, opts, logger),
		gemini.NewJudge(generator, opts, logger),
	)
}
