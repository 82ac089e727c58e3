package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cleanup-kit/internal/report"
	"cleanup-kit/internal/runlog"
)

const stepSummaryEnv = "GITHUB_STEP_SUMMARY"

func newSummarizeCmd(a *app) *cobra.Command {
	var stepSummary bool
	cmd := &cobra.Command{
		Use:   "summarize [report.json] [ignored...]",
		Short: "Print files/warnings/errors counts of an Open ICS lint report",
		Long: `Print one line "files=<N> warnings=<N> errors=<N>" for a lint report.

A missing, empty or unparsable report counts as zero; the command still
exits 0 so CI steps never fail on the summary itself. Arguments after the
report path are ignored.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.ReportPath
			if len(args) > 0 {
				path = args[0]
			}
			if len(args) > 1 {
				a.log.Debug("ignoring extra arguments", "args", args[1:])
			}

			s, err := report.Load(path)
			if err != nil {
				a.log.Warn("report unreadable, counting zero", "path", path, "err", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.String())

			a.runlog.Log(runlog.Record{
				Type:   runlog.TypeSummary,
				Source: path,
				Counts: &runlog.Counts{Files: s.Files, Warnings: s.Warnings, Errors: s.Errors},
			})

			if stepSummary || a.cfg.StepSummary {
				target := os.Getenv(stepSummaryEnv)
				if target == "" {
					a.log.Debug("step summary requested but " + stepSummaryEnv + " is not set")
					return nil
				}
				if err := report.AppendStepSummary(target, s); err != nil {
					a.log.Warn("step summary not written", "path", target, "err", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&stepSummary, "step-summary", false, "also append a markdown summary to $"+stepSummaryEnv)
	return cmd
}
