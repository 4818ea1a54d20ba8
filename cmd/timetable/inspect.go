package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/timetable-go/pkg/timetable/output"
	"github.com/ukaji3/timetable-go/pkg/timetable/xlsx"
)

var inspectPretty bool

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file.xlsx]",
		Short: "Print the cells, sizes and print areas of a generated workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}

	cmd.Flags().BoolVar(&inspectPretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("file not found: %s", inputPath)
	}
	defer f.Close()

	wb, err := xlsx.Read(f, filepath.Base(inputPath))
	if err != nil {
		return fmt.Errorf("failed to read workbook: %w", err)
	}

	jsonData, err := output.WorkbookToJSON(wb, inspectPretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
