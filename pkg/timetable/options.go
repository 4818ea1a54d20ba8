// Package timetable reshapes a JSON class timetable into a one-sheet-per-week workbook.
package timetable

import (
	"log/slog"

	"github.com/ukaji3/timetable-go/pkg/timetable/xlsx"
)

// Format represents the output format of a generation.
type Format string

const (
	// FormatXLSX writes the rendered weeks as an Excel workbook.
	FormatXLSX Format = "xlsx"
	// FormatJSON writes the week grid as JSON.
	FormatJSON Format = "json"
	// FormatSheets writes the rendered sheets, with sizes and cell text, as JSON.
	FormatSheets Format = "sheets"
)

// Options configures generation.
type Options struct {
	// Format selects the document written by Generate.
	Format Format
	// Pretty indents JSON output.
	Pretty bool
	// Style sets the workbook fonts.
	Style xlsx.Style
	// WeekLimit treats week numbers above it as invalid. Zero means no limit.
	WeekLimit int
	// Logger receives debug and info records. If nil, logs are discarded.
	Logger *slog.Logger
	// Reporter receives status updates. If nil, no updates are sent.
	Reporter Reporter
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Format: FormatXLSX,
		Style:  xlsx.DefaultStyle(),
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (o Options) report(r Report) {
	if o.Reporter != nil {
		o.Reporter(r)
	}
}
