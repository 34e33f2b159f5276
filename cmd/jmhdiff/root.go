package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jmhdiff/internal/jmh"
	"jmhdiff/internal/telemetry"
	"jmhdiff/internal/ui"
)

var exit = os.Exit
var cfgFile string
var interactive bool

// newRootCmd builds the root command. The root itself performs the diff so
// the tool stays a two-argument one-liner: jmhdiff old.txt new.txt.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jmhdiff <old_file> <new_file>",
		Short: "Compare two JMH text reports",
		Long: `jmhdiff parses two JMH text reports (an old and a new run of the same
suite), matches benchmarks by name and units, and prints the relative score
change for every benchmark present in both.

Malformed report rows are skipped, never fatal; one notice is printed when any
were ignored. Only the last blank-line-separated block of each file is treated
as the results table.`,
		Args:         cobra.ExactArgs(2),
		RunE:         runDiff,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.jmhdiff.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	cmd.PersistentFlags().String("db", ".jmhdiff/history.db", "History database path")
	cmd.PersistentFlags().String("format", "table", "Output format: table, markdown or report")
	cmd.PersistentFlags().Float64("threshold", 10.0, "Percentage magnitude above which diffs are highlighted")
	cmd.PersistentFlags().Bool("no-color", false, "Disable styled output")
	cmd.PersistentFlags().BoolVarP(&interactive, "interactive", "i", false, "Browse diffs in an interactive table")

	viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("history_db", cmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("format", cmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("threshold", cmd.PersistentFlags().Lookup("threshold"))
	viper.BindPFlag("no_color", cmd.PersistentFlags().Lookup("no-color"))

	return cmd
}

var rootCmd = newRootCmd()

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig reads in config file and environment variables if set.
func initConfig() {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".jmhdiff")
	}

	viper.SetEnvPrefix("JMHDIFF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	telemetry.InitLogger(viper.GetBool("verbose"))

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

func runDiff(cmd *cobra.Command, args []string) error {
	oldRecords, oldFailures, err := jmh.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("old report: %w", err)
	}
	newRecords, newFailures, err := jmh.ParseFile(args[1])
	if err != nil {
		return fmt.Errorf("new report: %w", err)
	}

	reportIgnoredRows(cmd, len(oldFailures)+len(newFailures))
	slog.Debug("parsed reports",
		"old_records", len(oldRecords), "new_records", len(newRecords),
		"old_failures", len(oldFailures), "new_failures", len(newFailures))

	return renderDiffs(cmd, jmh.Compare(oldRecords, newRecords))
}

// reportIgnoredRows prints the single notice for skipped rows. It goes to
// stderr so piped table output stays clean.
func reportIgnoredRows(cmd *cobra.Command, count int) {
	if count == 0 {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "ignored %d malformed report row(s) and continued\n", count)
}

func renderDiffs(cmd *cobra.Command, diffs []jmh.Diff) error {
	if interactive {
		return ui.RunViewer(diffs)
	}

	opts := ui.Options{
		Color:     ui.ColorEnabled(viper.GetBool("no_color")),
		Threshold: viper.GetFloat64("threshold"),
	}

	switch format := viper.GetString("format"); format {
	case "table":
		ui.RenderTable(cmd.OutOrStdout(), diffs, opts)
	case "markdown":
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderMarkdown(diffs))
	case "report":
		out, err := ui.RenderReport(diffs)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
	default:
		return fmt.Errorf("unknown format %q (want table, markdown or report)", format)
	}
	return nil
}
