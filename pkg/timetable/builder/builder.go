// Package builder folds parsed meetings into a week grid.
package builder

import (
	"log/slog"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
)

// Placement is one meeting landing on one grid coordinate.
type Placement struct {
	Week    int
	Day     models.Day
	Section int
	Meeting models.Meeting
}

// Params configures grid building.
type Params struct {
	// WeekLimit drops week numbers above it. Zero means no limit.
	WeekLimit int
	Logger    *slog.Logger
}

// Build places every meeting of tt into a new grid.
func Build(tt models.Timetable, params Params) *models.WeekGrid {
	return Fold(Placements(tt, params))
}

// Placements walks tt in section, day, meeting, week order and emits one
// placement per valid week number.
func Placements(tt models.Timetable, params Params) []Placement {
	log := params.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var out []Placement
	for _, section := range tt.Sections {
		for d, day := range models.Days {
			for _, m := range section.Days[d] {
				weeks, invalid := parser.ParseWeeks(m.Weeks, params.WeekLimit)
				if invalid > 0 {
					log.Debug("ignoring invalid week tokens",
						"section", section.Index, "day", day, "weeks", m.Weeks, "invalid", invalid)
				}
				for _, week := range weeks {
					out = append(out, Placement{
						Week:    week,
						Day:     day,
						Section: section.Index,
						Meeting: m,
					})
				}
			}
		}
	}
	return out
}

// Fold reduces placements into a grid. Every placement counts toward MaxWeek,
// but only sections inside the fixed period range occupy a slot.
func Fold(placements []Placement) *models.WeekGrid {
	grid := models.NewWeekGrid()
	for _, p := range placements {
		if p.Week > grid.MaxWeek {
			grid.MaxWeek = p.Week
		}
		if p.Section < 0 || p.Section >= models.SectionsPerDay {
			continue
		}
		slots := grid.Slots(p.Week, p.Day)
		slots[p.Section] = Merge(slots[p.Section], p.Meeting)
	}
	return grid
}

// Merge returns the cell that results from placing m on cell. A nil cell
// yields a new cell built from m. Otherwise only the teacher is merged in;
// class and classroom of the existing cell win. The input cell is never modified.
func Merge(cell *models.MergedCell, m models.Meeting) *models.MergedCell {
	if cell == nil {
		return &models.MergedCell{
			ClassName:     m.ClassName,
			ClassroomName: m.ClassroomName,
			Teachers:      []string{m.TeacherName},
		}
	}
	if cell.HasTeacher(m.TeacherName) {
		return cell
	}
	teachers := make([]string, len(cell.Teachers), len(cell.Teachers)+1)
	copy(teachers, cell.Teachers)
	return &models.MergedCell{
		ClassName:     cell.ClassName,
		ClassroomName: cell.ClassroomName,
		Teachers:      append(teachers, m.TeacherName),
	}
}
