package cmd

import (
	"errors"
	"io/fs"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/career-compass/internal/profile"
)

const (
	app = "career-compass"
)

type Config struct {
	Catalog  string          `mapstructure:"catalog"`
	Profile  profile.Profile `mapstructure:"profile"`
	Matching *MatchingConfig `mapstructure:"matching"`
	AI       *AIConfig       `mapstructure:"ai"`
	Server   *ServerConfig   `mapstructure:"server"`
}

type MatchingConfig struct {
	UseDesiredSkills bool `mapstructure:"use-desired-skills"`
	Backfill         bool `mapstructure:"backfill"`
	Limit            int  `mapstructure:"limit"`
}

type AIConfig struct {
	Enabled             bool          `mapstructure:"enabled"`
	Provider            string        `mapstructure:"provider"`
	IncludeDescriptions bool          `mapstructure:"include-descriptions"`
	Temperature         float32       `mapstructure:"temperature"`
	Timeout             time.Duration `mapstructure:"timeout"`
	Judge               bool          `mapstructure:"judge"`
	Gemini              *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key" json:"-"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "career-compass matches a student's interests, skills and values to careers",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("catalog", "CAREER_COMPASS_CATALOG"); err != nil {
		log.Fatalf("binding CAREER_COMPASS_CATALOG environment variable: %v", err)
	}

	setDefaults()

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is career-compass.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("catalog", "", "career catalog file (.csv or .json); built-in catalog when empty")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
}

func setDefaults() {
	viper.SetDefault("matching.use-desired-skills", true)
	viper.SetDefault("matching.backfill", false)
	viper.SetDefault("matching.limit", 6)

	viper.SetDefault("ai.enabled", true)
	viper.SetDefault("ai.provider", "gemini")
	viper.SetDefault("ai.include-descriptions", true)
	viper.SetDefault("ai.temperature", 0.4)
	viper.SetDefault("ai.timeout", "45s")
	viper.SetDefault("ai.judge", true)
	viper.SetDefault("ai.gemini.model", "gemini-2.5-flash")
	viper.SetDefault("ai.gemini.max-retries", 2)
	viper.SetDefault("ai.gemini.max-log-length", 200)

	viper.SetDefault("server.listen", "127.0.0.1:8080")
}

func initConfig() {
	// A missing .env is the normal case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("loading .env: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// Every command works on defaults, but an explicit or broken file is fatal.
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
