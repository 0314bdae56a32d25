// Package pipeline orchestrates sprite-sheet discovery, per-sheet
// processing across a worker pool, and batch summary reporting.
//
// Types:
//   - RunStats: per-outcome task counters, sheet failures, bytes written
//
// Functions:
//   - Discover(pattern, ignore): doublestar glob walk, ignore globs,
//     natural sort
//   - Run(ctx, cfg, log): discover → for each collision group, in
//     parallel, each sheet in discovery order:
//     probe → plan → decode → extract each animation → summary
//   - Analyze(ctx, cfg, log): header-only geometry report
//   - AcquireLock(results): single-writer lock on the results tree
package pipeline
