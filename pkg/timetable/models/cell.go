package models

// CellRow represents a single non-empty row read back from a workbook.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string) to cell text.
	C map[string]string `json:"c"`
	// Height is the row height in points.
	Height float64 `json:"height"`
}
