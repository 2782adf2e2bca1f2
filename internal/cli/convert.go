package cli

import (
	"fmt"

	"eyedropper/internal/domain/entity"

	"github.com/spf13/cobra"
)

var convertFormat string

var convertCmd = &cobra.Command{
	Use:   "convert <hex>",
	Short: "Print a color in every supported format",
	Long: `Convert a hex color to hex, rgb, rgba and hsl notation.

Examples:
  eyedropper convert "#FF5733"
  eyedropper convert 336699 --format hsl`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "print only this format")
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := entity.ParseHex(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if convertFormat != "" {
		f, err := parseFormatArg(convertFormat)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, c.Format(f))
		return nil
	}

	for _, f := range []entity.Format{entity.FormatHex, entity.FormatRGB, entity.FormatRGBA, entity.FormatHSL} {
		fmt.Fprintf(out, "%-5s %s\n", f, c.Format(f))
	}
	return nil
}
