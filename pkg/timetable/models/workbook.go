package models

// WorkbookData is a generated workbook read back from disk.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the worksheets in workbook order.
	Sheets []SheetData `json:"sheets"`
}

// SheetData is the content and layout of one worksheet.
type SheetData struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Rows contains rows with at least one non-empty cell.
	Rows []CellRow `json:"rows,omitempty"`
	// ColWidths holds the width of each used column.
	ColWidths []float64 `json:"col_widths,omitempty"`
	// PrintAreas contains the print areas defined for the sheet.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}
