package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"topchart/internal/catalog"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show recent scrape runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if asJSON {
				if runs == nil {
					runs = []catalog.Run{}
				}
				return writeJSON(cmd, runs)
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			rows := make([][]string, 0, len(runs))
			for _, r := range runs {
				rows = append(rows, []string{
					r.ID,
					r.StartedAt.Local().Format("2006-01-02 15:04:05"),
					r.Origin,
					r.Strategy,
					strconv.Itoa(r.Titles),
					strconv.Itoa(r.Records),
					strconv.Itoa(r.MoviesInserted),
					strconv.Itoa(r.SeriesInserted),
					r.Duration().Round(time.Millisecond).String(),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Run", "Started", "Source", "Strategy", "Titles", "Records", "Movies+", "Series+", "Duration"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of runs to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print runs as JSON")
	return cmd
}
