package cli

import (
	"fmt"

	"eyedropper/internal/application/service"
	"eyedropper/internal/di"
	"eyedropper/internal/domain/entity"

	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format [hex|rgb|rgba|hsl]",
	Short: "Show or set the color format used for picks",
	Long: `Without an argument, print the stored format. With one, store it.
When a color has been picked before, it is shown in the active format.

Examples:
  eyedropper format
  eyedropper format hsl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	container, err := di.NewStorageContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	defer container.Close()

	ctx := cmd.Context()
	if len(args) == 0 {
		f, err := container.Preferences.Format(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), f)
		return printLastColor(cmd, container.Preferences, f)
	}

	f, err := parseFormatArg(args[0])
	if err != nil {
		return err
	}
	if err := container.Preferences.SetFormat(ctx, f); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Format set to %s\n", f)
	return printLastColor(cmd, container.Preferences, f)
}

func printLastColor(cmd *cobra.Command, prefs *service.Preferences, f entity.Format) error {
	c, ok, err := prefs.LastColor(cmd.Context())
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Last color: %s\n", c.Format(f))
	}
	return nil
}
