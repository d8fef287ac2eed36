package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"topchart/internal/analysis"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var file string
	var limit int
	var offline bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract title, year and rating records from the chart page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, runner, err := ctx.newRunner()
			if err != nil {
				return err
			}
			html, source, err := loadHTML(cmd.Context(), runner, file, offline)
			if err != nil {
				return err
			}
			records := runner.Extractor().Records(html, cfg.Source.MaxTitles)
			if asJSON {
				return writeJSON(cmd, records)
			}
			if len(records) == 0 {
				return noTitlesError(source, cfg)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Extracted %d records (%s)\n", len(records), source)
			shown := analysis.Head(records, previewCount(cmd, limit, cfg.Report.PreviewRecords, len(records)))
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Title", "Year", "Rating"},
				recordRows(shown),
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the chart from this HTML file instead of the page cache")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of records to show (0 shows all)")
	cmd.Flags().BoolVar(&offline, "offline", false, "Never download; fail when the page cache is empty")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print every record as JSON")
	return cmd
}
