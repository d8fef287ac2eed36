package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"topchart/internal/analysis"
)

func newTitlesCommand(ctx *commandContext) *cobra.Command {
	var file string
	var limit int
	var offline bool

	cmd := &cobra.Command{
		Use:   "titles",
		Short: "Preview the titles found on the chart page",
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
			titles := runner.Extractor().Titles(html, cfg.Source.MaxTitles)
			if len(titles) == 0 {
				return noTitlesError(source, cfg)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Found %d titles (%s)\n", len(titles), source)
			shown := analysis.Head(titles, previewCount(cmd, limit, cfg.Report.PreviewTitles, len(titles)))
			rows := make([][]string, 0, len(shown))
			for i, title := range shown {
				rows = append(rows, []string{strconv.Itoa(i + 1), title})
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Title"}, rows, []columnAlignment{alignRight, alignLeft}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the chart from this HTML file instead of the page cache")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of titles to show (0 shows all)")
	cmd.Flags().BoolVar(&offline, "offline", false, "Never download; fail when the page cache is empty")
	return cmd
}
