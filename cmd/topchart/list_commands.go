package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"topchart/internal/catalog"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored catalog entries",
	}
	listCmd.AddCommand(newListMoviesCommand(ctx))
	listCmd.AddCommand(newListSeriesCommand(ctx))
	return listCmd
}

func newListMoviesCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "List stored movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			movies, err := store.Movies(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				if movies == nil {
					movies = []catalog.Movie{}
				}
				return writeJSON(cmd, movies)
			}
			out := cmd.OutOrStdout()
			if len(movies) == 0 {
				fmt.Fprintln(out, "No movies stored")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Title", "Year", "Rating"},
				movieRows(movies, true),
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print movies as JSON")
	return cmd
}

func newListSeriesCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "series",
		Short: "List stored series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			series, err := store.Series(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				if series == nil {
					series = []catalog.Series{}
				}
				return writeJSON(cmd, series)
			}
			out := cmd.OutOrStdout()
			if len(series) == 0 {
				fmt.Fprintln(out, "No series stored")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Title", "Year", "Seasons", "Episodes"},
				seriesRows(series),
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print series as JSON")
	return cmd
}
