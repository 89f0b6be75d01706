// Tincture - colour model conversion and classification
//
// Tincture converts colours between RGB, HSV and CMYK, classifies them and
// finds the nearest named hue on the colour wheel.
package main

import (
	"os"

	"github.com/jmylchreest/tincture/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
