package xlsx

import (
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/xuri/excelize/v2"
)

// Read loads a workbook and returns every worksheet's text, sizing and print areas.
func Read(r io.Reader, bookName string) (*models.WorkbookData, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	printAreas := ExtractPrintAreas(f)

	wb := &models.WorkbookData{BookName: bookName}
	for _, sheetName := range f.GetSheetList() {
		rows, width, err := ExtractCells(f, sheetName)
		if err != nil {
			return nil, err
		}

		widths := make([]float64, width)
		for c := range widths {
			col, _ := excelize.ColumnNumberToName(c + 1)
			if widths[c], err = f.GetColWidth(sheetName, col); err != nil {
				return nil, err
			}
		}

		wb.Sheets = append(wb.Sheets, models.SheetData{
			Name:       sheetName,
			Rows:       rows,
			ColWidths:  widths,
			PrintAreas: printAreas[sheetName],
		})
	}

	return wb, nil
}

// ExtractCells returns the non-empty rows of a sheet and the number of columns in use.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, int, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, err
	}

	var result []models.CellRow
	width := 0
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		cellMap := make(map[string]string)
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellMap[strconv.Itoa(colIdx+1)] = cellValue
			if colIdx+1 > width {
				width = colIdx + 1
			}
		}
		if len(cellMap) == 0 {
			continue
		}

		height, err := f.GetRowHeight(sheetName, rowNum)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, models.CellRow{
			R:      rowNum,
			C:      cellMap,
			Height: height,
		})
	}

	return result, width, nil
}

// ExtractPrintAreas returns the print areas of a workbook keyed by sheet name.
func ExtractPrintAreas(f *excelize.File) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}
	return result
}

// parsePrintAreaReference parses 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10,
// possibly several separated by commas.
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var areas []models.PrintArea
	var sheetName string
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		if sheetName == "" {
			sheetName = strings.Trim(part[:idx], "'")
		}
		if area, ok := parseRangeToArea(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}
	return sheetName, areas
}

func parseRangeToArea(rangeStr string) (models.PrintArea, bool) {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return models.PrintArea{}, false
	}
	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.PrintArea{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.PrintArea{}, false
	}
	return models.PrintArea{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, true
}
