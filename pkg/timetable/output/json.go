// Package output serializes timetable structures to JSON.
package output

import (
	"github.com/goccy/go-json"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// GridToJSON serializes a week grid.
func GridToJSON(grid *models.WeekGrid, pretty bool) ([]byte, error) {
	return toJSON(grid, pretty)
}

// WorkbookToJSON serializes a workbook read back from disk.
func WorkbookToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return toJSON(wb, pretty)
}

// SheetsToJSON serializes rendered sheets.
func SheetsToJSON(sheets []models.Sheet, pretty bool) ([]byte, error) {
	return toJSON(sheets, pretty)
}

func toJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
