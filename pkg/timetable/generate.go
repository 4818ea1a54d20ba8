package timetable

import (
	"context"
	"fmt"
	"io"

	"github.com/ukaji3/timetable-go/pkg/timetable/builder"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/output"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
	"github.com/ukaji3/timetable-go/pkg/timetable/render"
	"github.com/ukaji3/timetable-go/pkg/timetable/xlsx"
)

// Result summarizes a finished generation.
type Result struct {
	// Grid is the week grid built from the input.
	Grid *models.WeekGrid
	// Sheets holds the rendered weeks, one per week 1..Grid.MaxWeek.
	Sheets []models.Sheet
	// Skipped counts meetings dropped for missing fields.
	Skipped int
}

// Build parses input and folds it into a week grid.
func Build(input []byte, opts Options) (*models.WeekGrid, int, error) {
	log := opts.logger()

	tt, err := parser.Parse(input, log)
	if err != nil {
		return nil, 0, err
	}

	grid := builder.Build(tt, builder.Params{
		WeekLimit: opts.WeekLimit,
		Logger:    log,
	})
	log.Info("timetable built",
		"sections", len(tt.Sections), "max_week", grid.MaxWeek, "skipped", tt.Skipped)
	return grid, tt.Skipped, nil
}

// Generate runs the whole pipeline and writes the document to w.
// Status updates go to opts.Reporter; the returned error carries the same failure.
func Generate(ctx context.Context, input []byte, w io.Writer, opts Options) (*Result, error) {
	opts.report(inProgressReport())

	result, err := generate(ctx, input, w, opts)
	if err != nil {
		opts.logger().Info("generation failed", "error", err)
		opts.report(FailureReport(err))
		return nil, err
	}

	opts.report(SuccessReport(len(result.Sheets)))
	return result, nil
}

func generate(ctx context.Context, input []byte, w io.Writer, opts Options) (*Result, error) {
	grid, skipped, err := Build(input, opts)
	if err != nil {
		return nil, err
	}
	if grid.MaxWeek == 0 {
		return nil, ErrNoWeeks
	}
	result := &Result{Grid: grid, Skipped: skipped}

	switch opts.Format {
	case FormatJSON:
		data, err := output.GridToJSON(grid, opts.Pretty)
		if err != nil {
			return nil, NewStageError("export", err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, NewStageError("export", err)
		}
		result.Sheets = render.Render(grid)
	case FormatSheets:
		result.Sheets = render.Render(grid)
		data, err := output.SheetsToJSON(result.Sheets, opts.Pretty)
		if err != nil {
			return nil, NewStageError("export", err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, NewStageError("export", err)
		}
	case FormatXLSX, "":
		style := opts.Style
		if style == (xlsx.Style{}) {
			style = xlsx.DefaultStyle()
		}
		result.Sheets = render.Render(grid)
		if err := xlsx.Write(ctx, w, result.Sheets, style); err != nil {
			return nil, NewStageError("export", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, opts.Format)
	}

	opts.logger().Info("timetable exported", "format", opts.Format, "sheets", len(result.Sheets))
	return result, nil
}
