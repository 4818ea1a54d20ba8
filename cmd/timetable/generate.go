package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/timetable-go/pkg/timetable"
)

var (
	outputPath string
	format     string
	pretty     bool
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [input.json|-]",
		Short: "Generate the weekly workbook from a timetable JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGenerate,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: export.filename from config, \"-\" for stdout)")
	cmd.Flags().StringVar(&format, "format", "xlsx", "Output format: xlsx, json (week grid), sheets (rendered layout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	// Parse format
	var outFormat timetable.Format
	switch format {
	case "xlsx":
		outFormat = timetable.FormatXLSX
	case "json":
		outFormat = timetable.FormatJSON
	case "sheets":
		outFormat = timetable.FormatSheets
	default:
		return fmt.Errorf("invalid format: %s (must be xlsx, json or sheets)", format)
	}

	opts := timetable.DefaultOptions()
	opts.Format = outFormat
	opts.Pretty = pretty
	opts.Style = cfg.Style()
	opts.WeekLimit = cfg.Limits.MaxWeek
	opts.Logger = newLogger(false)
	opts.Reporter = func(r timetable.Report) {
		if r.Status != timetable.StatusFailure {
			fmt.Fprintln(cmd.ErrOrStderr(), r.Message)
		}
	}

	var buf bytes.Buffer
	if _, err := timetable.Generate(context.Background(), input, &buf, opts); err != nil {
		return errors.New(timetable.Message(err))
	}

	dest := outputPath
	if dest == "" {
		dest = cfg.Export.Filename
		if outFormat != timetable.FormatXLSX {
			dest = "-"
		}
	}
	if dest == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(dest, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", dest)
	return nil
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	// Validate input file exists
	if _, err := os.Stat(args[0]); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", args[0])
	}
	return os.ReadFile(args[0])
}
