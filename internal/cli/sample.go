package cli

import (
	"errors"
	"fmt"
	"strings"

	"eyedropper/internal/di"
	"eyedropper/internal/domain/entity"
	"eyedropper/internal/usecase/capture"
	"eyedropper/internal/usecase/sampler"

	"github.com/spf13/cobra"
)

var (
	sampleX      float64
	sampleY      float64
	sampleFormat string
	sampleGrid   int
)

var sampleCmd = &cobra.Command{
	Use:   "sample <url>",
	Short: "Print the color at a point of a page",
	Long: `Load a page, capture the viewport and print the color at the given CSS
pixel position. Runs headless unless --headless=false is given.

Examples:
  eyedropper sample --x 10 --y 20 https://example.com
  eyedropper sample --x 10 --y 20 --format hsl https://example.com
  eyedropper sample --x 10 --y 20 --grid 5 https://example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().Float64Var(&sampleX, "x", 0, "x position in CSS pixels")
	sampleCmd.Flags().Float64Var(&sampleY, "y", 0, "y position in CSS pixels")
	sampleCmd.Flags().StringVarP(&sampleFormat, "format", "f", "", "output format (hex, rgb, rgba, hsl; default: stored format)")
	sampleCmd.Flags().IntVar(&sampleGrid, "grid", 0, "also print the odd-sized neighbourhood around the point")
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("headless") {
		cfg.Headless = true
	}

	ctx := cmd.Context()
	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	defer container.Close()

	if err := container.Browser.Navigate(ctx, args[0]); err != nil {
		return err
	}

	viewport, err := container.Page.Viewport(ctx)
	if err != nil {
		return err
	}

	req, err := entity.NewRequest(entity.ActionCaptureScreen, nil)
	if err != nil {
		return err
	}
	resp, err := container.Bridge.Send(ctx, entity.EndpointBackground, req)
	if err != nil {
		return err
	}
	if !resp.Success {
		return errors.New(resp.Error)
	}

	buf, err := capture.BufferFromDataURL(resp.ImageData, viewport)
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrCaptureFailed, err)
	}

	format, err := resolveFormat(cmd, container, sampleFormat)
	if err != nil {
		return err
	}

	s := sampler.New(buf)
	p := entity.Point{X: sampleX, Y: sampleY}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, s.At(p).Format(format))

	if sampleGrid > 0 {
		n := sampleGrid
		if n%2 == 0 {
			n++
		}
		for _, row := range s.Grid(p, n) {
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = c.ToHex()
			}
			fmt.Fprintln(out, strings.Join(cells, " "))
		}
	}
	return nil
}

// resolveFormat validates an explicit format or falls back to the stored one.
func resolveFormat(cmd *cobra.Command, container *di.Container, explicit string) (entity.Format, error) {
	if explicit != "" {
		return parseFormatArg(explicit)
	}
	return container.Preferences.Format(cmd.Context())
}

func parseFormatArg(s string) (entity.Format, error) {
	f := entity.ParseFormat(s)
	if string(f) != strings.ToLower(strings.TrimSpace(s)) {
		return "", fmt.Errorf("unknown format %q (hex, rgb, rgba, hsl)", s)
	}
	return f, nil
}
