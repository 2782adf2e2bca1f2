// Package cli provides the command-line interface for eyedropper.
package cli

import (
	"eyedropper/internal/application/port/output"
	"eyedropper/internal/di"
	"eyedropper/internal/infrastructure/env"

	"github.com/spf13/cobra"
)

var (
	// Global flags override the matching environment settings.
	globalHeadless bool
	globalDBPath   string
	globalSettings string

	rootCmd = &cobra.Command{
		Use:   "eyedropper",
		Short: "Pick colors from any web page",
		Long: `Eyedropper opens a page in a browser, freezes the visible viewport and lets
you pick a pixel with a magnifier. The picked color is copied to the
clipboard in your preferred format and kept in a short history.`,
		SilenceUsage: true,
	}
)

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&globalHeadless, "headless", false, "run the browser without a window")
	rootCmd.PersistentFlags().StringVar(&globalDBPath, "db", "", "history database path (default: $EYEDROPPER_DB_PATH or user config dir)")
	rootCmd.PersistentFlags().StringVar(&globalSettings, "settings", "", "YAML tuning file (default: $EYEDROPPER_SETTINGS)")

	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(formatCmd)
}

// flagOverrides lets --settings take precedence over the environment.
type flagOverrides struct {
	output.ConfigPort
	settings string
}

func (o flagOverrides) Get(key string) string {
	if key == env.KeySettings && o.settings != "" {
		return o.settings
	}
	return o.ConfigPort.Get(key)
}

// loadConfig merges environment configuration with command-line flags.
func loadConfig(cmd *cobra.Command) (di.Config, error) {
	cfg, err := di.ConfigFromEnv(flagOverrides{ConfigPort: env.NewEnvService(), settings: globalSettings})
	if err != nil {
		return di.Config{}, err
	}

	if cmd.Flags().Changed("headless") {
		cfg.Headless = globalHeadless
	}
	if globalDBPath != "" {
		cfg.DBPath = globalDBPath
	}
	return cfg, nil
}
