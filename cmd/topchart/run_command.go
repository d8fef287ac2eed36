package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"topchart/internal/pipeline"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var opts pipeline.Options
	var export bool
	var quiet bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Scrape the chart, load the catalog and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, runner, err := ctx.newRunner()
			if err != nil {
				return err
			}
			res, err := runner.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			writeSection(out, "Run "+res.RunID, colorize)
			fmt.Fprintln(out, renderStatusLine("Source", statusInfo, res.Origin, colorize))
			fmt.Fprintln(out, renderStatusLine("Strategy", statusInfo, res.Strategy, colorize))
			fmt.Fprintln(out, renderStatusLine("Titles", statusOK, strconv.Itoa(len(res.Titles)), colorize))
			recordsKind := statusOK
			if stored := len(res.Movies); stored < len(res.Records) {
				recordsKind = statusWarn
			}
			fmt.Fprintln(out, renderStatusLine("Records", recordsKind, strconv.Itoa(len(res.Records)), colorize))
			fmt.Fprintln(out, renderStatusLine("Movies inserted", statusOK, strconv.Itoa(res.MoviesInserted), colorize))
			fmt.Fprintln(out, renderStatusLine("Series inserted", statusOK, strconv.Itoa(res.SeriesInserted), colorize))
			fmt.Fprintln(out, renderStatusLine("Fresh database", statusInfo, yesNo(opts.Fresh), colorize))
			fmt.Fprintln(out, renderStatusLine("Duration", statusInfo, res.Duration.Round(time.Millisecond).String(), colorize))
			fmt.Fprintln(out)

			if !quiet {
				renderReport(out, res.Movies, res.Series, reportOptions{
					Threshold: cfg.Report.RatingThreshold,
					Preview:   cfg.Report.PreviewTitles,
					Colorize:  colorize,
				})
			}
			if export {
				fmt.Fprintln(out)
				return writeExports(out, cfg.Paths.ExportDir, res.Movies, res.Series, cfg.Report.CSVBOM, colorize)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Fresh, "fresh", false, "Delete the database before loading")
	cmd.Flags().BoolVar(&opts.ReuseRecords, "reuse", false, "Reuse the records file from the previous run when present")
	cmd.Flags().BoolVar(&opts.Offline, "offline", false, "Never download; use the page cache only")
	cmd.Flags().BoolVar(&export, "export", false, "Write CSV and JSON exports after loading")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print the run summary only")
	return cmd
}
