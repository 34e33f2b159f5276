package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"jmhdiff/internal/history"
	"jmhdiff/internal/jmh"
)

func newBaselineCmd() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "baseline <new_file>",
		Short: "Compare a report against a stored run",
		Long: `Parses a JMH text report and diffs it against a run saved with
'jmhdiff save'. Without --label the most recent run is the baseline.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, failures, err := jmh.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("new report: %w", err)
			}
			reportIgnoredRows(cmd, len(failures))

			store, err := newStoreFunc(historyPath())
			if err != nil {
				return fmt.Errorf("opening history: %w", err)
			}
			defer store.Close()

			var run *history.Run
			if label != "" {
				run, err = store.LoadByLabel(label)
			} else {
				run, err = store.LoadLatest()
			}
			if err != nil {
				return err
			}

			slog.Debug("baseline loaded", "id", run.ID, "label", run.Label, "saved_at", run.SavedAt)
			return renderDiffs(cmd, jmh.Compare(run.Records, records))
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Baseline run label (default: the latest run)")
	return cmd
}

func init() {
	rootCmd.AddCommand(newBaselineCmd())
}
