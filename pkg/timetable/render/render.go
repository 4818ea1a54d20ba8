// Package render lays out a week grid as one table per week.
package render

import (
	"fmt"
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// TeacherSeparator joins the teachers of a merged cell.
const TeacherSeparator = "、"

// Header holds the label row: the period column followed by Monday..Sunday,
// matching models.Days.
var Header = [8]string{"时间/节次", "周一", "周二", "周三", "周四", "周五", "周六", "周日"}

// PeriodTimes holds the clock range of each period.
var PeriodTimes = [models.SectionsPerDay]string{
	"8:00-8:45", "8:45-9:30", "9:45-10:30", "10:30-11:15", "11:25-12:10",
	"13:30-14:15", "14:15-15:00", "15:10-15:55", "15:55-16:40",
	"18:00-18:45", "18:45-19:30", "19:30-20:15",
}

// SheetName returns the worksheet name for a week.
func SheetName(week int) string {
	return fmt.Sprintf("第%d周", week)
}

// PeriodLabel returns the row label for a 0-based section.
func PeriodLabel(section int) string {
	return fmt.Sprintf("第%d节\n%s", section+1, PeriodTimes[section])
}

// CellText formats a merged cell as class, classroom and teachers on separate lines.
func CellText(c *models.MergedCell) string {
	if c == nil {
		return ""
	}
	return c.ClassName + "\n" + c.ClassroomName + "\n" + strings.Join(c.Teachers, TeacherSeparator)
}

// Render lays out weeks 1..grid.MaxWeek in ascending order. Weeks without
// meetings produce sheets with empty body cells.
func Render(grid *models.WeekGrid) []models.Sheet {
	sheets := make([]models.Sheet, 0, grid.MaxWeek)
	for week := 1; week <= grid.MaxWeek; week++ {
		sheets = append(sheets, RenderWeek(grid, week))
	}
	return sheets
}

// RenderWeek lays out a single week.
func RenderWeek(grid *models.WeekGrid, week int) models.Sheet {
	rows := make([]models.Row, 0, models.SectionsPerDay+1)
	rows = append(rows, models.Row{
		Height: HeaderRowHeight,
		Header: true,
		Cells:  append([]string(nil), Header[:]...),
	})

	for s := 0; s < models.SectionsPerDay; s++ {
		cells := make([]string, 0, len(Header))
		cells = append(cells, PeriodLabel(s))
		for _, day := range models.Days {
			cells = append(cells, CellText(grid.Cell(week, day, s)))
		}
		rows = append(rows, models.Row{
			Height: RowHeight(cells),
			Cells:  cells,
		})
	}

	widths := make([]float64, len(Header))
	column := make([]string, len(rows))
	for c := range widths {
		for r, row := range rows {
			column[r] = row.Cells[c]
		}
		widths[c] = ColumnWidth(column)
	}

	return models.Sheet{
		Name:      SheetName(week),
		Week:      week,
		ColWidths: widths,
		Rows:      rows,
	}
}
