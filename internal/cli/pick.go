package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eyedropper/internal/di"

	"github.com/spf13/cobra"
)

var pickTimeout time.Duration

var pickCmd = &cobra.Command{
	Use:   "pick <url>",
	Short: "Open a page and pick a color from it",
	Long: `Open a page in the browser and start the picker on it.

Move the pointer to inspect pixels in the magnifier, click to copy the color
under the pointer, or press Escape to cancel. The color is written in the
stored format (see "eyedropper format").

Examples:
  eyedropper pick https://example.com
  eyedropper pick --timeout 2m https://example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runPick,
}

func init() {
	pickCmd.Flags().DurationVar(&pickTimeout, "timeout", 0, "give up after this long (0 waits for a pick or Escape)")
}

func runPick(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if pickTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pickTimeout)
		defer cancel()
	}

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	defer container.Close()

	if err := container.Browser.Navigate(ctx, args[0]); err != nil {
		return err
	}

	if err := container.Launcher.Launch(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Picker active: click to pick, Escape to cancel")

	if err := container.Controller.Wait(ctx); err != nil {
		container.Controller.Deactivate()
		return fmt.Errorf("picker interrupted: %w", err)
	}

	if _, ok := container.Controller.LastPick(); !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), "Picker cancelled")
	}
	return nil
}
