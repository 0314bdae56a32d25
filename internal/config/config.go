// Package config holds runtime configuration: defaults, the optional TOML
// file, CLI flag overrides, and validation. A Config is a plain value passed
// by pointer to every package that needs it; nothing here is global state.
package config

import (
	"errors"
	"fmt"
	"image"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Region is a named rectangle in sheet-local pixel coordinates.
type Region struct {
	Left   int `toml:"left"`
	Top    int `toml:"top"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Rect returns the region as an image.Rectangle anchored at the origin.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Left+r.Width, r.Top+r.Height)
}

// Fits reports whether the region lies fully inside a width x height sheet.
// Regions are never clamped; a region that does not fit is rejected.
func (r Region) Fits(width, height int) bool {
	return r.Left+r.Width <= width && r.Top+r.Height <= height
}

func (r Region) String() string {
	return fmt.Sprintf("%d, %d, %d, %d", r.Left, r.Top, r.Width, r.Height)
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [Load], then by CLI flags via [ApplyFlags].
type Config struct {
	// Paths.
	Targets            string   // Input root. Default: "spritesheets".
	Results            string   // Output root. Default: "results".
	SpriteSheetPattern string   // Glob; empty means "<Targets>/**/*/*.png".
	IgnorePatterns     []string // Globs excluded from discovery.

	// Animations, in extraction order, and their rectangles.
	Animations     []string
	AnimationsData map[string]Region

	// Behavior.
	Workers int  // Sheets processed in parallel. Default: runtime.NumCPU().
	DryRun  bool // Run every step except directory creation and writes.
	Strict  bool // Exit non-zero when any sheet or task failed.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path (appended).
}

// DefaultConfig returns the built-in configuration: the six standard
// character-sheet animations laid out on a 64px grid.
func DefaultConfig() Config {
	return Config{
		Targets:        "spritesheets",
		Results:        "results",
		IgnorePatterns: []string{"**/node_modules/**"},
		Animations:     DefaultAnimations(),
		AnimationsData: DefaultAnimationsData(),
		Workers:        runtime.NumCPU(),
		ColorMode:      ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(p string) string {
	if p == "/" {
		return "/"
	}
	return strings.TrimRight(p, "/")
}

// Pattern returns the effective sprite-sheet glob in slash form. When no
// pattern is configured it is derived from Targets.
func (c *Config) Pattern() string {
	if c.SpriteSheetPattern != "" {
		return filepath.ToSlash(c.SpriteSheetPattern)
	}
	return path.Join(filepath.ToSlash(c.Targets), "**", "*", "*.png")
}

// Validate checks enum fields, paths, glob syntax, animations and regions.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Targets == "" || c.Results == "" {
		return errors.New("need both targets and results directories")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1 (got %d)", c.Workers)
	}

	if !doublestar.ValidatePattern(c.Pattern()) {
		return fmt.Errorf("invalid sprite sheet pattern %q", c.Pattern())
	}
	for _, p := range c.IgnorePatterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return fmt.Errorf("invalid ignore pattern %q", p)
		}
	}

	if len(c.Animations) == 0 {
		return errors.New("no animations configured")
	}
	seen := make(map[string]bool, len(c.Animations))
	for _, name := range c.Animations {
		if strings.TrimSpace(name) == "" {
			return errors.New("animation name must not be empty")
		}
		if seen[name] {
			return fmt.Errorf("animation %q listed more than once", name)
		}
		seen[name] = true

		r, ok := c.AnimationsData[name]
		if !ok {
			return fmt.Errorf("animation %q has no region in animations_data", name)
		}
		if err := validateRegion(name, r); err != nil {
			return err
		}
	}
	return nil
}

func validateRegion(name string, r Region) error {
	if r.Left < 0 || r.Top < 0 {
		return fmt.Errorf("animation %q: region origin must not be negative (%s)", name, r)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("animation %q: region size must be positive (%s)", name, r)
	}
	return nil
}

// ValidatePaths ensures the resolved results directory is not inside (or
// equal to) the resolved targets directory, so a run never discovers its
// own output. Both arguments must be absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(targetsAbs, resultsAbs string) error {
	sep := string(filepath.Separator)
	if resultsAbs == targetsAbs || strings.HasPrefix(resultsAbs+sep, targetsAbs+sep) {
		return errors.New("results directory must not be inside targets directory")
	}
	return nil
}
