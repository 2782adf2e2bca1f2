package userinteraction

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"eyedropper/internal/application/port/output"
	"eyedropper/internal/domain/entity"

	"github.com/fatih/color"
)

var _ output.NotifierPort = (*Console)(nil)

// Console reports picker results in the terminal.
type Console struct {
	out io.Writer
}

func NewConsole() *Console {
	return NewConsoleWriter(os.Stdout)
}

func NewConsoleWriter(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) ShowPicked(ctx context.Context, pick entity.Pick) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprint(c.out, "✓ Copied ")
	fmt.Fprintf(c.out, "%s %s\n", swatch(pick.Color), pick.Formatted)
}

func (c *Console) ShowFallback(ctx context.Context, value string) {
	yellow := color.New(color.FgYellow)
	yellow.Fprint(c.out, "Clipboard unavailable, color: ")
	fmt.Fprintln(c.out, value)
}

func (c *Console) ShowError(ctx context.Context, message string, err error) {
	red := color.New(color.FgRed)
	red.Fprint(c.out, "❌ ")
	if err != nil {
		fmt.Fprintf(c.out, "%s: ", message)
		dim := color.New(color.Faint)
		dim.Fprintln(c.out, truncate(err.Error(), 300))
		return
	}
	fmt.Fprintln(c.out, message)
}

func (c *Console) ShowHistory(ctx context.Context, history entity.History) {
	if history.Len() == 0 {
		dim := color.New(color.Faint)
		dim.Fprintln(c.out, "No colors picked yet")
		return
	}

	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(c.out, "Recent colors (%d)\n", history.Len())
	for i, col := range history.Colors() {
		fmt.Fprintf(c.out, "%2d. %s %s\n", i+1, swatch(col), col.ToHex())
	}
}

// swatch is a small block painted in c on true-colour terminals.
func swatch(c entity.Color) string {
	return color.BgRGB(int(c.R), int(c.G), int(c.B)).Sprint(strings.Repeat(" ", 2))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
