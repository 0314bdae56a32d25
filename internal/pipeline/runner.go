package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/backmassage/sheetcrop/internal/config"
	"github.com/backmassage/sheetcrop/internal/display"
	"github.com/backmassage/sheetcrop/internal/extract"
	"github.com/backmassage/sheetcrop/internal/logging"
	"github.com/backmassage/sheetcrop/internal/naming"
	"github.com/backmassage/sheetcrop/internal/planner"
	"github.com/backmassage/sheetcrop/internal/probe"
)

type item struct {
	n     int // 1-based position in discovery order.
	sheet naming.Sheet
}

// job is a group of sheets whose outputs collide, in discovery order. One
// worker handles the whole group so the earliest sheet that writes a frame
// owns it on every run.
type job []item

// Run is the top-level batch entry point. It discovers sheets, fans them
// out to cfg.Workers goroutines, and returns aggregate stats. Only a
// discovery failure or cancellation produces an error; sheet and task
// failures are logged and counted.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats
	start := time.Now()

	files, err := Discover(cfg.Pattern(), cfg.IgnorePatterns)
	if err != nil {
		log.Error("Sprite sheet discovery failed: %v", err)
		return stats, err
	}
	stats.Sheets = len(files)

	logBatchHeader(cfg, log, &stats)
	if len(files) == 0 {
		log.Warn("No sprite sheets match %s", cfg.Pattern())
		return stats, nil
	}

	groups := groupJobs(files)
	workers := min(cfg.Workers, len(groups))

	jobs := make(chan job)
	results := make(chan groupResult)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- processGroup(cfg, log, j, len(files))
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, j := range groups {
			select {
			case <-ctx.Done():
				return
			case jobs <- j:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	done := 0
	for r := range results {
		stats.merge(r.stats)
		done += r.sheets
	}

	if ctx.Err() != nil {
		log.Warn("Interrupted after %d of %d sheets", done, len(files))
		logSummary(cfg, log, &stats, time.Since(start))
		return stats, ctx.Err()
	}

	logSummary(cfg, log, &stats, time.Since(start))
	return stats, nil
}

type groupResult struct {
	stats  RunStats
	sheets int
}

// groupJobs wraps discovered paths into jobs, one per collision group,
// ordered by each group's first sheet.
func groupJobs(files []string) []job {
	n := make(map[string]int, len(files))
	sheets := make([]naming.Sheet, len(files))
	for i, path := range files {
		sheets[i] = naming.ParseSheet(path)
		n[path] = i + 1
	}

	groups := naming.GroupCollisions(sheets)
	jobs := make([]job, len(groups))
	for i, g := range groups {
		for _, s := range g {
			jobs[i] = append(jobs[i], item{n: n[s.Path], sheet: s})
		}
	}
	return jobs
}

// processGroup handles the sheets of one job in order. In a dry run
// nothing reaches the disk, so outputs an earlier sheet of the group would
// have written are tracked here instead.
func processGroup(cfg *config.Config, log *logging.Logger, j job, total int) groupResult {
	var r groupResult
	planned := make(map[string]bool)
	for _, it := range j {
		r.stats.merge(processSheet(cfg, log, it, total, planned))
		r.sheets++
	}
	return r
}

// processSheet handles one sheet: probe → plan → decode → extract each
// task. It returns the sheet's own counters.
func processSheet(cfg *config.Config, log *logging.Logger, it item, total int, planned map[string]bool) RunStats {
	var stats RunStats
	path := it.sheet.Path
	log.Info("[%d/%d] %s", it.n, total, path)

	// --- Probe (header only) ---
	info, err := probe.Probe(path)
	if err != nil {
		log.Error("Cannot read sprite sheet: %v", err)
		stats.SheetsFailed++
		return stats
	}
	log.Debug(cfg.Verbose, "  %s %s, %s", info.Format,
		display.FormatDimensions(info.Width, info.Height), display.FormatBytes(info.Size))

	// --- Plan ---
	plan := planner.BuildPlan(cfg, it.sheet, info)
	log.Debug(cfg.Verbose, "  %d to extract, %d out of bounds",
		plan.Count(planner.ActionExtract), plan.Count(planner.ActionSkipBounds))
	for _, t := range plan.Tasks {
		if t.Action == planner.ActionSkipBounds {
			log.Error("Invalid extraction area for %s in %s: %s", t.Animation, path, t.SkipReason)
			stats.add(extract.SkippedBounds, 0)
		}
	}
	if !plan.Extractable() {
		return stats
	}

	// --- Decode ---
	img, err := extract.Open(path)
	if err != nil {
		log.Error("Cannot decode sprite sheet: %v", err)
		stats.SheetsFailed++
		return stats
	}

	// --- Extract ---
	opts := extract.Options{DryRun: cfg.DryRun}
	for _, t := range plan.Tasks {
		if t.Action != planner.ActionExtract {
			continue
		}
		if cfg.DryRun && planned[t.OutputPath] {
			log.Skip("[DRY] Already extracted from an earlier sheet: %s", t.OutputPath)
			stats.add(extract.SkippedExists, 0)
			continue
		}

		res, err := extract.Region(img, t.Region.Rect(), t.OutputPath, opts)
		logOutcome(cfg, log, path, t, res, err)
		stats.add(res.Outcome, res.Bytes)
		if res.Outcome == extract.Written {
			planned[t.OutputPath] = true
		}
	}
	return stats
}

func logOutcome(cfg *config.Config, log *logging.Logger, sheet string, t planner.Task, res extract.Result, err error) {
	switch res.Outcome {
	case extract.Written:
		if cfg.DryRun {
			log.Success("[DRY] Would extract %s -> %s", t.Animation, t.OutputPath)
		} else {
			log.Success("Extracted %s -> %s (%s)", t.Animation, t.OutputPath, display.FormatBytes(res.Bytes))
		}
	case extract.SkippedBlack:
		log.Skip("Skipping black image for %s in %s", t.Animation, sheet)
	case extract.SkippedExists:
		log.Skip("File already exists: %s", t.OutputPath)
	case extract.SkippedBounds:
		log.Error("Invalid extraction area for %s in %s: %v", t.Animation, sheet, err)
	case extract.Failed:
		log.Error("Failed to extract %s from %s: %v", t.Animation, sheet, err)
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d sprite sheets matching %s", stats.Sheets, cfg.Pattern())
	log.Info("Animations: %s", strings.Join(cfg.Animations, ", "))
	log.Info("Results: %s", cfg.Results)
	log.Debug(cfg.Verbose, "Workers: %d", cfg.Workers)
	if len(cfg.IgnorePatterns) > 0 {
		log.Debug(cfg.Verbose, "Ignoring: %s", strings.Join(cfg.IgnorePatterns, ", "))
	}
	if cfg.DryRun {
		log.Warn("Dry run: no directories or files will be created")
	}
	fmt.Println()
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats, elapsed time.Duration) {
	fmt.Println()
	log.Info("Done in %s: %d written, %d skipped, %d failed",
		elapsed.Round(time.Millisecond), stats.Written, stats.Skipped(), stats.Failed+stats.SheetsFailed)

	written := display.FormatBytes(stats.BytesWritten)
	if cfg.DryRun {
		written = "n/a (dry run)"
	}
	rows := [][]string{
		{"Sheets", fmt.Sprint(stats.Sheets)},
		{"Sheets failed", fmt.Sprint(stats.SheetsFailed)},
		{"Frames written", fmt.Sprint(stats.Written)},
		{"Skipped (black)", fmt.Sprint(stats.SkippedBlack)},
		{"Skipped (exists)", fmt.Sprint(stats.SkippedExists)},
		{"Invalid area", fmt.Sprint(stats.SkippedBounds)},
		{"Failed", fmt.Sprint(stats.Failed)},
		{"Bytes written", written},
	}
	fmt.Println(display.RenderTable([]string{"Summary", ""}, rows,
		[]display.Align{display.AlignLeft, display.AlignRight}))

	if stats.HasFailures() {
		log.Warn("Some sheets or frames could not be extracted; see errors above")
	} else {
		log.Success("All sheets processed")
	}
}
