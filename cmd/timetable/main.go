// Package main provides the CLI entry point for timetable-go.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/timetable-go/internal/config"
)

var (
	configPath string
	verbose    bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timetable",
		Short: "Reshape a JSON class timetable into a weekly Excel workbook",
		Long: `timetable-go reads a class timetable organised by period and weekday,
expands the week lists of every course meeting and writes one worksheet per week.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: timetable.toml next to the executable)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log skipped meetings and invalid weeks")

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newInspectCommand())

	return rootCmd
}

func loadConfig() (*config.AppConfig, error) {
	return config.Load(configPath)
}

// newLogger returns a JSON logger on stdout for the server and a text logger
// on stderr for one-shot commands.
func newLogger(server bool) *slog.Logger {
	level := slog.LevelWarn
	if server {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if server {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
