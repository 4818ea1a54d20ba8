package models

// Sheet is one rendered week, ready to be written to a workbook.
type Sheet struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Week is the 1-based week number the sheet shows.
	Week int `json:"week"`
	// ColWidths holds one width per column, in Excel character units.
	ColWidths []float64 `json:"col_widths"`
	// Rows contains the header row followed by one row per period.
	Rows []Row `json:"rows"`
}

// Row is a rendered sheet row.
type Row struct {
	// Height is the row height in points.
	Height float64 `json:"height"`
	// Header marks the label row.
	Header bool `json:"header,omitempty"`
	// Cells holds the display text of each column. Empty cells are "".
	Cells []string `json:"cells"`
}
