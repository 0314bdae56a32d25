package pipeline

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/backmassage/sheetcrop/internal/config"
	"github.com/backmassage/sheetcrop/internal/display"
	"github.com/backmassage/sheetcrop/internal/logging"
	"github.com/backmassage/sheetcrop/internal/probe"
	"github.com/backmassage/sheetcrop/internal/term"
)

// sheetRow holds the probed per-sheet data for the analysis table.
type sheetRow struct {
	Path    string
	Info    *probe.SheetInfo
	Missing []string // Animations whose region does not fit.
}

func (r sheetRow) size() image.Point {
	return image.Pt(r.Info.Width, r.Info.Height)
}

// Analyze discovers sprite sheets, probes each header, and prints a table
// of sheet geometry and per-animation fit. Sheets whose size differs from
// the most common size are flagged. Nothing is decoded or written.
func Analyze(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	files, err := Discover(cfg.Pattern(), cfg.IgnorePatterns)
	if err != nil {
		log.Error("Sprite sheet discovery failed: %v", err)
		return err
	}
	if len(files) == 0 {
		log.Warn("No sprite sheets match %s", cfg.Pattern())
		return nil
	}

	total := len(files)
	log.Info("Analyzing %d sprite sheets …", total)
	fmt.Println()

	isTTY := term.IsTerminal(os.Stdout)
	var rows []sheetRow
	var skipped int

	for i, path := range files {
		if ctx.Err() != nil {
			if isTTY {
				clearProgress()
			}
			log.Warn("Interrupted")
			return ctx.Err()
		}

		printProgress(isTTY, i+1, total, skipped, filepath.Base(path))

		info, err := probe.Probe(path)
		if err != nil {
			skipped++
			if isTTY {
				clearProgress()
			}
			log.Warn("Skip (unreadable): %s", path)
			continue
		}
		rows = append(rows, sheetRow{Path: path, Info: info, Missing: missingAnimations(cfg, info)})
	}

	if isTTY {
		clearProgress()
	}

	if len(rows) == 0 {
		log.Warn("No sprite sheets could be read")
		return nil
	}

	common := commonSize(rows)
	fmt.Println(renderAnalysisTable(cfg, rows, common))
	printAnalysisSummary(cfg, log, rows, common)
	return nil
}

// missingAnimations lists the configured animations whose region does not
// fit a sheet of the given size, in configured order.
func missingAnimations(cfg *config.Config, info *probe.SheetInfo) []string {
	var missing []string
	for _, name := range cfg.Animations {
		if !cfg.AnimationsData[name].Fits(info.Width, info.Height) {
			missing = append(missing, name)
		}
	}
	return missing
}

// commonSize returns the most frequent sheet size. Ties go to the larger
// area so the reference sheet is the one that fits the most regions.
func commonSize(rows []sheetRow) image.Point {
	counts := make(map[image.Point]int)
	for _, r := range rows {
		counts[r.size()]++
	}
	sizes := make([]image.Point, 0, len(counts))
	for p := range counts {
		sizes = append(sizes, p)
	}
	sort.Slice(sizes, func(i, j int) bool {
		a, b := sizes[i], sizes[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		if a.X*a.Y != b.X*b.Y {
			return a.X*a.Y > b.X*b.Y
		}
		return a.X > b.X
	})
	return sizes[0]
}

func renderAnalysisTable(cfg *config.Config, rows []sheetRow, common image.Point) string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		fit := fmt.Sprintf("%d/%d", len(cfg.Animations)-len(r.Missing), len(cfg.Animations))
		if len(r.Missing) > 0 {
			fit = colorize(fit+" (no "+strings.Join(r.Missing, ", ")+")", term.Red)
		}
		flag := ""
		if r.size() != common {
			flag = colorize("[*]", term.Orange)
		}
		out = append(out, []string{
			r.Path,
			r.Info.Format,
			display.FormatDimensions(r.Info.Width, r.Info.Height),
			display.FormatBytes(r.Info.Size),
			fit,
			flag,
		})
	}
	return display.RenderTable(
		[]string{"Sheet", "Format", "Dimensions", "Size", "Animations", ""},
		out,
		[]display.Align{display.AlignLeft, display.AlignLeft, display.AlignRight, display.AlignRight, display.AlignLeft, display.AlignLeft},
	)
}

func printAnalysisSummary(cfg *config.Config, log *logging.Logger, rows []sheetRow, common image.Point) {
	var odd, incomplete int
	for _, r := range rows {
		if r.size() != common {
			odd++
		}
		if len(r.Missing) > 0 {
			incomplete++
		}
	}

	log.Info("Analyzed %d sprite sheets", len(rows))
	log.Info("  Most common size: %s", display.FormatDimensions(common.X, common.Y))
	if odd > 0 {
		log.Warn("  %d sheet(s) differ from the most common size [*]", odd)
	}
	if incomplete > 0 {
		log.Error("  %d sheet(s) too small for at least one of %d animations", incomplete, len(cfg.Animations))
	}
	if odd == 0 && incomplete == 0 {
		log.Success("  All sheets share one size and fit every animation")
	}
}

func colorize(s, color string) string {
	if color == "" {
		return s
	}
	return color + s + term.NC
}

// printProgress shows a live probe counter. On a TTY it writes an
// inline \r-overwritten line; otherwise it is a no-op (the skip warnings
// already provide enough breadcrumbs in piped/logged output).
func printProgress(isTTY bool, current, total, skipped int, name string) {
	if !isTTY {
		return
	}
	pct := current * 100 / total
	status := fmt.Sprintf("  Probing [%d/%d] %d%% ", current, total, pct)
	if skipped > 0 {
		status += fmt.Sprintf("(%d skipped) ", skipped)
	}

	maxName := 40
	if len(name) > maxName {
		name = name[:maxName-1] + "…"
	}
	status += name

	// Pad to 80 chars to overwrite previous longer lines, then \r.
	if len(status) < 80 {
		status += strings.Repeat(" ", 80-len(status))
	}
	fmt.Fprintf(os.Stdout, "\r%s", status)
}

// clearProgress erases the inline progress line on a TTY.
func clearProgress() {
	fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", 80))
}
