package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/sheetcrop/internal/check"
	"github.com/backmassage/sheetcrop/internal/config"
	"github.com/backmassage/sheetcrop/internal/display"
	"github.com/backmassage/sheetcrop/internal/pipeline"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Report sheet sizes and which animations fit, without extracting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := ctx.open(cmd)
			if err != nil {
				return err
			}
			defer log.Close()

			if err := check.Preflight(cfg); err != nil {
				log.Error("%v", err)
				return err
			}
			return pipeline.Analyze(cmd.Context(), cfg, log)
		},
	}
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check codecs, paths, regions and the results lock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := ctx.loadConfig(cmd)
			if err != nil {
				// RunCheck reports validation errors itself.
				if cfg, err = ctx.rawConfig(cmd); err != nil {
					return err
				}
			}
			log, err := openLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			display.PrintBanner()
			if !check.RunCheck(cfg, log) {
				return errors.New("check failed")
			}
			return nil
		},
	}
}

func newRegionsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "Print the configured animations and their rectangles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := ctx.loadConfig(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), display.RenderRegions(cfg))
			return nil
		},
	}
}

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}
	configCmd.AddCommand(newConfigInitCommand())
	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample " + config.DefaultFileName,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := config.DefaultFileName
			if len(args) == 1 {
				target = args[0]
			}
			if err := config.CreateSample(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}
}
