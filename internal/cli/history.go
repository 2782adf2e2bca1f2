package cli

import (
	"encoding/json"
	"fmt"

	"eyedropper/internal/di"

	"github.com/spf13/cobra"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently picked colors",
	Long: `List recently picked colors, most recent first.

Examples:
  eyedropper history
  eyedropper history --json`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print a JSON array of hex values")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	container, err := di.NewStorageContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	defer container.Close()

	history, err := container.Preferences.History(cmd.Context())
	if err != nil {
		return err
	}

	if historyJSON {
		data, err := json.Marshal(history.Hex())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	container.Notifier.ShowHistory(cmd.Context(), history)
	return nil
}
