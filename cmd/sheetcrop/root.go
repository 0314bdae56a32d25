package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/backmassage/sheetcrop/internal/check"
	"github.com/backmassage/sheetcrop/internal/config"
	"github.com/backmassage/sheetcrop/internal/display"
	"github.com/backmassage/sheetcrop/internal/pipeline"
)

// errFailures is returned in strict mode when any sheet or task failed.
var errFailures = errors.New("one or more sheets or animations failed (strict mode)")

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "sheetcrop",
		Short:         "Crop animation strips out of sprite sheets",
		Version:       version + " (" + commit + ")",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, ctx)
		},
	}

	ctx.flags = config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newRegionsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

// runBatch is the default command: extract every configured animation from
// every discovered sheet.
func runBatch(cmd *cobra.Command, cc *commandContext) error {
	// Phase 1: Bootstrap. Config errors surface before the logger exists.
	cfg, log, err := cc.open(cmd)
	if err != nil {
		return err
	}
	defer log.Close()

	// Phase 2: Logger available; all output goes through log from here on.
	display.PrintBanner()

	// Resolve and validate paths: targets must exist and results must not
	// be inside targets (prevents discovering our own output).
	if err := check.Preflight(cfg); err != nil {
		log.Error("%v", err)
		return err
	}
	targetsAbs, err := absPath(cfg.Targets)
	if err != nil {
		log.Error("Cannot resolve targets path: %s", cfg.Targets)
		return err
	}
	resultsAbs, err := absPath(cfg.Results)
	if err != nil {
		log.Error("Cannot resolve results path: %s", cfg.Results)
		return err
	}
	if err := cfg.ValidatePaths(targetsAbs, resultsAbs); err != nil {
		log.Error("%v", err)
		log.Error("Choose a results path outside: %s", cfg.Targets)
		return err
	}

	log.Info("=== sheetcrop v%s (%s) ===", version, commit)
	log.Info("Run: %s", uuid.NewString())
	log.Info("In:  %s", cfg.Targets)
	log.Info("Out: %s", cfg.Results)

	// Single writer per results tree. A dry run writes nothing and takes
	// no lock.
	if !cfg.DryRun {
		lock, err := pipeline.AcquireLock(cfg.Results)
		if err != nil {
			log.Error("%v", err)
			return err
		}
		defer lock.Unlock()
	}

	// Phase 3: Signal handling. Cancel on SIGINT/SIGTERM so no new sheet
	// is started; sheets already in flight finish.
	runCtx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, finishing sheets in progress…")
			cancel()
		case <-runCtx.Done():
		}
	}()

	// Phase 4: Run pipeline (discover → probe → plan → extract).
	stats, err := pipeline.Run(runCtx, cfg, log)
	if err != nil {
		return err
	}
	if cfg.Strict && stats.HasFailures() {
		return errFailures
	}
	return nil
}
