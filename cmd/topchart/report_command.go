package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var export bool
	var threshold float64

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Analyze the stored catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			movies, err := store.Movies(cmd.Context())
			if err != nil {
				return err
			}
			series, err := store.Series(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			if len(movies) == 0 && len(series) == 0 {
				fmt.Fprintln(out, renderStatusLine("Catalog", statusWarn, "empty; run `topchart run` first", colorize))
				return nil
			}

			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.Report.RatingThreshold
			}
			renderReport(out, movies, series, reportOptions{
				Threshold: threshold,
				Preview:   cfg.Report.PreviewTitles,
				Colorize:  colorize,
			})
			if export {
				fmt.Fprintln(out)
				return writeExports(out, cfg.Paths.ExportDir, movies, series, cfg.Report.CSVBOM, colorize)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&export, "export", false, "Write CSV and JSON exports to the export directory")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Rating threshold for the filtered listing (defaults to report.rating_threshold)")
	return cmd
}
