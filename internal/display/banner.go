// Package display renders human-facing output: the startup banner, size
// and region formatting, and box tables for reports.
package display

import (
	"fmt"
	"os"

	"github.com/backmassage/sheetcrop/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	fmt.Fprint(os.Stdout, term.Magenta)
	fmt.Fprint(os.Stdout, `     _               _
 ___| |__   ___  ___| |_ ___ _ __ ___  _ __
/ __| '_ \ / _ \/ _ \ __/ __| '__/ _ \| '_ \
\__ \ | | |  __/  __/ || (__| | | (_) | |_) |
|___/_| |_|\___|\___|\__\___|_|  \___/| .__/
                                      |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
