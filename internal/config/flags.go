package config

// This file binds CLI flags onto a pflag.FlagSet (cobra's) and applies them.
// Flags are captured into FlagValues and copied into Config only when the
// user actually set them, so TOML values and defaults hold otherwise.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// FlagValues holds raw flag values until [ApplyFlags] copies them into a Config.
type FlagValues struct {
	ConfigPath string

	targets    string
	results    string
	pattern    string
	ignore     []string
	animations []string
	workers    int
	dryRun     bool
	strict     bool
	verbose    bool
	color      string
	noColor    bool
	logFile    string
}

// BindFlags registers every run flag on fs and returns the holder they write to.
func BindFlags(fs *pflag.FlagSet) *FlagValues {
	v := &FlagValues{}
	definePathFlags(fs, v)
	defineBehaviorFlags(fs, v)
	defineDisplayFlags(fs, v)
	return v
}

// definePathFlags registers --config, --targets, --results, --pattern, --ignore, --animations.
func definePathFlags(fs *pflag.FlagSet, v *FlagValues) {
	fs.StringVarP(&v.ConfigPath, "config", "c", "", "Configuration file (default: ./"+DefaultFileName+" if present)")
	fs.StringVar(&v.targets, "targets", "", "Input root directory (default: spritesheets)")
	fs.StringVar(&v.results, "results", "", "Output root directory (default: results)")
	fs.StringVar(&v.pattern, "pattern", "", "Sprite sheet glob (default: <targets>/**/*/*.png)")
	fs.StringArrayVar(&v.ignore, "ignore", nil, "Glob to exclude from discovery (repeatable)")
	fs.StringSliceVar(&v.animations, "animations", nil, "Animations to extract, in order (default: all configured)")
}

// defineBehaviorFlags registers --workers, --dry-run, --strict.
func defineBehaviorFlags(fs *pflag.FlagSet, v *FlagValues) {
	fs.IntVarP(&v.workers, "workers", "j", 0, "Sheets processed in parallel (default: number of CPUs)")
	fs.BoolVarP(&v.dryRun, "dry-run", "d", false, "Preview only; do not create directories or files")
	fs.BoolVar(&v.strict, "strict", false, "Exit with status 1 if any sheet or animation failed")
}

// defineDisplayFlags registers --verbose, --color, --no-color, --log.
func defineDisplayFlags(fs *pflag.FlagSet, v *FlagValues) {
	fs.BoolVarP(&v.verbose, "verbose", "v", false, "Verbose output")
	fs.StringVar(&v.color, "color", "", "Colored logs: auto | always | never")
	fs.BoolVar(&v.noColor, "no-color", false, "Disable colored logs")
	fs.StringVarP(&v.logFile, "log", "l", "", "Append logs to file")
}

// ApplyFlags copies every flag the user set on fs into cfg.
func ApplyFlags(fs *pflag.FlagSet, v *FlagValues, cfg *Config) error {
	if fs.Changed("targets") {
		cfg.Targets = NormalizeDirArg(v.targets)
	}
	if fs.Changed("results") {
		cfg.Results = NormalizeDirArg(v.results)
	}
	if fs.Changed("pattern") {
		cfg.SpriteSheetPattern = v.pattern
	}
	if fs.Changed("ignore") {
		cfg.IgnorePatterns = v.ignore
	}
	if fs.Changed("animations") {
		names, err := selectAnimations(v.animations, cfg.AnimationsData)
		if err != nil {
			return err
		}
		cfg.Animations = names
	}
	if fs.Changed("workers") {
		cfg.Workers = v.workers
	}
	if fs.Changed("dry-run") {
		cfg.DryRun = v.dryRun
	}
	if fs.Changed("strict") {
		cfg.Strict = v.strict
	}
	if fs.Changed("verbose") {
		cfg.Verbose = v.verbose
	}
	if fs.Changed("log") {
		cfg.LogFile = v.logFile
	}

	if v.noColor {
		cfg.ColorMode = ColorNever
	} else if fs.Changed("color") {
		mode, err := parseColorMode(v.color)
		if err != nil {
			return err
		}
		cfg.ColorMode = mode
	}
	return nil
}

// selectAnimations resolves --animations names case-insensitively against
// the configured regions, returning the canonical names in the given order.
func selectAnimations(requested []string, data map[string]Region) ([]string, error) {
	out := make([]string, 0, len(requested))
	for _, raw := range requested {
		want := strings.TrimSpace(raw)
		if want == "" {
			continue
		}
		name, ok := canonicalAnimation(want, data)
		if !ok {
			return nil, fmt.Errorf("unknown animation %q", want)
		}
		out = append(out, name)
	}
	return out, nil
}

func canonicalAnimation(want string, data map[string]Region) (string, bool) {
	if _, ok := data[want]; ok {
		return want, true
	}
	for name := range data {
		if strings.EqualFold(name, want) {
			return name, true
		}
	}
	return "", false
}

func parseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
}
