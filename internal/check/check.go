// Package check provides diagnostics (the check subcommand) and the
// pre-pipeline validation (Preflight) of the targets tree.
package check

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/sheetcrop/internal/config"
	"github.com/backmassage/sheetcrop/internal/display"
	"github.com/backmassage/sheetcrop/internal/pipeline"
	"github.com/backmassage/sheetcrop/internal/probe"
	"github.com/disintegration/imaging"
)

// Sentinel errors returned by Preflight.
var (
	ErrTargetsNotFound = errors.New("targets directory not found")
	ErrTargetsNotDir   = errors.New("targets path is not a directory")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Preflight verifies that the targets directory exists and is a directory.
func Preflight(cfg *config.Config) error {
	fi, err := os.Stat(cfg.Targets)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrTargetsNotFound, cfg.Targets)
	}
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrTargetsNotDir, cfg.Targets)
	}
	return nil
}

// RunCheck prints the state of everything a run depends on: image codecs,
// the targets tree and its matching sheets, results writability, the
// configured regions and the results lock. It returns false when a run
// would fail.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkCodecs(log)
	ok = checkTargets(cfg, log) && ok
	ok = checkResults(cfg, log) && ok
	ok = checkRegions(cfg, log) && ok
	checkLock(cfg, log)

	if ok {
		log.Success("Ready to run")
	} else {
		log.Error("Fix the errors above before running")
	}
	return ok
}

// checkCodecs lists the registered sheet decoders and round-trips a tiny
// PNG through the encoder used for output.
func checkCodecs(log Logger) bool {
	log.Info("Sheet formats: %s", strings.Join(probe.Formats, ", "))

	src := imaging.New(2, 2, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, src, imaging.PNG); err != nil {
		log.Error("PNG encoder failed: %v", err)
		return false
	}
	cfg, format, err := image.DecodeConfig(&buf)
	if err != nil || format != "png" || cfg.Width != 2 || cfg.Height != 2 {
		log.Error("PNG round trip failed (%s %dx%d): %v", format, cfg.Width, cfg.Height, err)
		return false
	}
	log.Success("PNG encoder works")
	return true
}

// checkTargets validates the targets directory and counts matching sheets.
func checkTargets(cfg *config.Config, log Logger) bool {
	if err := Preflight(cfg); err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("Targets: %s", cfg.Targets)

	files, err := pipeline.Discover(cfg.Pattern(), cfg.IgnorePatterns)
	if err != nil {
		log.Error("%v", err)
		return false
	}
	if len(files) == 0 {
		log.Warn("No sprite sheets match %s", cfg.Pattern())
		return true
	}
	log.Success("%d sprite sheets match %s", len(files), cfg.Pattern())
	return true
}

// checkResults verifies that the results directory, or the closest existing
// ancestor that would hold it, accepts new files.
func checkResults(cfg *config.Config, log Logger) bool {
	dir := cfg.Results
	exists := true
	for {
		fi, err := os.Stat(dir)
		if err == nil {
			if !fi.IsDir() {
				log.Error("Results path is not a directory: %s", dir)
				return false
			}
			break
		}
		if !errors.Is(err, os.ErrNotExist) {
			log.Error("Cannot access results path: %v", err)
			return false
		}
		exists = false
		parent := filepath.Dir(dir)
		if parent == dir {
			log.Error("No existing parent for results: %s", cfg.Results)
			return false
		}
		dir = parent
	}

	if err := probeWritable(dir); err != nil {
		log.Error("Results not writable (%s): %v", dir, err)
		return false
	}
	if exists {
		log.Success("Results: %s (writable)", cfg.Results)
	} else {
		log.Success("Results: %s (will be created under %s)", cfg.Results, dir)
	}
	return true
}

func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".sheetcrop-check-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// checkRegions validates animations and prints the region table.
func checkRegions(cfg *config.Config, log Logger) bool {
	fmt.Println(display.RenderRegions(cfg))
	if err := cfg.Validate(); err != nil {
		log.Error("Configuration: %v", err)
		return false
	}
	log.Success("%d animations configured", len(cfg.Animations))
	return true
}

// checkLock reports whether another run holds the results tree.
func checkLock(cfg *config.Config, log Logger) {
	held, err := pipeline.LockHeld(cfg.Results)
	switch {
	case err != nil:
		log.Warn("Cannot inspect results lock: %v", err)
	case held:
		log.Warn("Another run is writing to %s", cfg.Results)
	default:
		log.Debug(true, "Results lock is free")
	}
}
