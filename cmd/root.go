// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geezee/YoutubeJS/internal/config"
	"github.com/geezee/YoutubeJS/internal/log"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagFormat      string
	flagOutput      string
	flagPick        bool
	flagJSON        bool
	flagScriptIndex int
	flagDebug       bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "youtubejs [file|url|-]",
	Short: "List the download links embedded in a video page",
	Long: `youtubejs reads a saved or live video watch page, decodes the stream map
embedded in it and prints one signed download link per available quality.
The links are computed only; nothing is downloaded.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              extractRun,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "Output format: auto | text | html | json")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Write the result to a file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&flagPick, "pick", "p", false, "Pick one stream with fzf and print its link")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Shorthand for --format json")
	rootCmd.PersistentFlags().IntVar(&flagScriptIndex, "script-index", -1, "Position of the player script on native pages")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagFormat != "" {
		cfg.Format = flagFormat
	}
	if flagJSON {
		cfg.Format = "json"
	}
	if cmd.Flags().Changed("script-index") {
		cfg.ScriptIndex = flagScriptIndex
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.Setup(os.Stderr, cfg.Debug)
	return nil
}
