package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jmhdiff/internal/history"
	"jmhdiff/internal/jmh"
)

// newStoreFunc allows mocking the history store in tests.
var newStoreFunc = func(path string) (history.Store, error) {
	return history.NewSQLiteStore(path)
}

func historyPath() string {
	return viper.GetString("history_db")
}

func newSaveCmd() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "save <report_file>",
		Short: "Parse a report and store it in the run history",
		Long: `Parses a JMH text report and stores its results in the local history
database, so later reports can be diffed against it with 'jmhdiff baseline'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, failures, err := jmh.ParseFile(args[0])
			if err != nil {
				return err
			}
			reportIgnoredRows(cmd, len(failures))

			store, err := newStoreFunc(historyPath())
			if err != nil {
				return fmt.Errorf("opening history: %w", err)
			}
			defer store.Close()

			id, err := store.Save(label, records)
			if err != nil {
				return fmt.Errorf("saving run: %w", err)
			}

			slog.Debug("run saved", "id", id, "label", label)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved run %s (%d results)\n", id, len(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "Label for the stored run")
	return cmd
}

func init() {
	rootCmd.AddCommand(newSaveCmd())
}
