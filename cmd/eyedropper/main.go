// Eyedropper picks colors from web pages through a magnifier overlay.
package main

import (
	"os"

	"eyedropper/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
