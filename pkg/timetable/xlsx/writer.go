// Package xlsx writes rendered timetable sheets to Excel workbooks and reads them back.
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DefaultFilename is the suggested download name.
const DefaultFilename = "course_schedule.xlsx"

// ErrEmptySheet indicates a sheet without rows was passed to the writer.
var ErrEmptySheet = errors.New("sheet has no rows")

// Style holds the fonts applied to every sheet.
type Style struct {
	FontFamily     string
	HeaderFontSize float64
	BodyFontSize   float64
}

// DefaultStyle returns the standard timetable fonts.
func DefaultStyle() Style {
	return Style{
		FontFamily:     "等线",
		HeaderFontSize: 12,
		BodyFontSize:   11,
	}
}

// NewWorkbook builds a workbook with one worksheet per sheet, in order.
// An xlsx file needs at least one worksheet, so with no sheets the default
// blank worksheet is kept.
func NewWorkbook(ctx context.Context, sheets []models.Sheet, style Style) (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)

	headerStyle, bodyStyle, err := newCellStyles(f, style)
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			f.Close()
			return nil, err
		}
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeSheet(f, sheet, headerStyle, bodyStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}
	}
	if len(sheets) > 0 {
		f.SetActiveSheet(0)
	}

	return f, nil
}

// Write serializes sheets as an xlsx document to w.
func Write(ctx context.Context, w io.Writer, sheets []models.Sheet, style Style) error {
	f, err := NewWorkbook(ctx, sheets, style)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := ctx.Err(); err != nil {
		return err
	}
	return f.Write(w)
}

func newCellStyles(f *excelize.File, style Style) (header, body int, err error) {
	alignment := &excelize.Alignment{
		Horizontal: "center",
		Vertical:   "center",
		WrapText:   true,
	}

	header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: style.FontFamily, Size: style.HeaderFontSize, Bold: true},
		Alignment: alignment,
	})
	if err != nil {
		return 0, 0, err
	}

	body, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Family: style.FontFamily, Size: style.BodyFontSize},
		Alignment: alignment,
	})
	if err != nil {
		return 0, 0, err
	}
	return header, body, nil
}

func writeSheet(f *excelize.File, sheet models.Sheet, headerStyle, bodyStyle int) error {
	if len(sheet.Rows) == 0 {
		return ErrEmptySheet
	}

	lastCol := 0
	for rowIdx, row := range sheet.Rows {
		rowNum := rowIdx + 1 // 1-based row index
		for colIdx, text := range row.Cells {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheet.Name, cell, text); err != nil {
				return err
			}
		}
		if len(row.Cells) > lastCol {
			lastCol = len(row.Cells)
		}

		if len(row.Cells) > 0 {
			styleID := bodyStyle
			if row.Header {
				styleID = headerStyle
			}
			first, _ := excelize.CoordinatesToCellName(1, rowNum)
			last, _ := excelize.CoordinatesToCellName(len(row.Cells), rowNum)
			if err := f.SetCellStyle(sheet.Name, first, last, styleID); err != nil {
				return err
			}
		}

		if err := f.SetRowHeight(sheet.Name, rowNum, math.Min(row.Height, excelize.MaxRowHeight)); err != nil {
			return err
		}
	}

	for colIdx, width := range sheet.ColWidths {
		col, err := excelize.ColumnNumberToName(colIdx + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet.Name, col, col, math.Min(width, excelize.MaxColumnWidth)); err != nil {
			return err
		}
	}

	if lastCol == 0 {
		return nil
	}
	return setPrintLayout(f, sheet.Name, models.PrintArea{R1: 1, C1: 1, R2: len(sheet.Rows), C2: lastCol})
}

// setPrintLayout prints the whole table in landscape.
func setPrintLayout(f *excelize.File, sheetName string, area models.PrintArea) error {
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: formatPrintAreaReference(sheetName, area),
		Scope:    sheetName,
	}); err != nil {
		return err
	}

	orientation := "landscape"
	return f.SetPageLayout(sheetName, &excelize.PageLayoutOptions{
		Orientation: &orientation,
	})
}

// formatPrintAreaReference renders area as 'SheetName'!$A$1:$H$13.
func formatPrintAreaReference(sheetName string, area models.PrintArea) string {
	start, _ := excelize.CoordinatesToCellName(area.C1, area.R1, true)
	end, _ := excelize.CoordinatesToCellName(area.C2, area.R2, true)
	return fmt.Sprintf("'%s'!%s:%s", sheetName, start, end)
}
