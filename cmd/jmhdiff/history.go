package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored benchmark runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newStoreFunc(historyPath())
			if err != nil {
				return fmt.Errorf("opening history: %w", err)
			}
			defer store.Close()

			runs, err := store.List(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved runs.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tLABEL\tSAVED\tRESULTS")
			for _, run := range runs {
				count, err := store.Count(run.ID)
				if err != nil {
					return err
				}
				id := run.ID
				if len(id) > 8 {
					id = id[:8]
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
					id, run.Label, run.SavedAt.Local().Format("2006-01-02 15:04:05"), count)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}

func init() {
	rootCmd.AddCommand(newHistoryCmd())
}
