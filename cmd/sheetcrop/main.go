// Command sheetcrop crops fixed animation regions out of every sprite sheet
// under a targets tree and writes them, one PNG per animation, to a
// mirrored results tree.
//
// It loads configuration (defaults, then sheetcrop.toml, then flags),
// validates paths, and either runs the batch or one of the report
// subcommands (analyze, check, regions, config init).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "sheetcrop: %v\n", err)
		}
		os.Exit(1)
	}
}
