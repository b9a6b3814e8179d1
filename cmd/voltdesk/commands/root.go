package commands

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/marshallshelly/voltdesk/pkg/api"
	"github.com/marshallshelly/voltdesk/pkg/catalog"
	"github.com/marshallshelly/voltdesk/pkg/config"
	"github.com/marshallshelly/voltdesk/pkg/querycache"
)

var (
	// Global flags
	apiURL     string
	authToken  string
	verbose    bool
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "voltdesk",
	Short: "Voltdesk - catalog administration for the parts inventory backend",
	Long: `Voltdesk is the administrative client for the electrical parts inventory.
It manages the five-level catalog hierarchy (category, style, type, brand,
color), part pricing, alternative part links, and the brand and color
master lists.

Features:
  - Interactive catalog tree browser with lazy loading
  - Quick-create parts straight from a tree coordinate
  - Alternative part links (substitute, upgrade, compatible)
  - Brand, color, and supplier management
  - Interactive TUI and non-interactive CLI modes`,
	Version: "0.4.1",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API base URL (overrides "+config.EnvAPIURL+")")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", "", "Auth token (overrides "+config.EnvToken+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// loadConfig resolves configuration from the environment and flags.
// Flags win over the environment.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		if apiURL == "" {
			return config.Config{}, err
		}
		cfg = config.Config{Timeout: 30 * time.Second}
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if authToken != "" {
		cfg.Token = authToken
	}
	return cfg, nil
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newStore builds the shared client, cache, and store stack used by
// every command.
func newStore() (*catalog.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.APIURL, cfg.Token,
		api.WithLogger(newLogger()),
		api.WithTimeout(cfg.Timeout),
	)
	return catalog.NewStore(client, querycache.New()), nil
}
