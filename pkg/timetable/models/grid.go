package models

// MergedCell combines every meeting that lands on one (week, day, period) slot.
type MergedCell struct {
	// ClassName is taken from the first meeting placed in the slot.
	ClassName string `json:"className"`
	// ClassroomName is taken from the first meeting placed in the slot.
	ClassroomName string `json:"classroomName"`
	// Teachers lists distinct teacher names in order of first appearance.
	Teachers []string `json:"teachers"`
}

// HasTeacher reports whether name is already listed on the cell.
func (c *MergedCell) HasTeacher(name string) bool {
	for _, t := range c.Teachers {
		if t == name {
			return true
		}
	}
	return false
}

// DaySlots is the fixed-length period array for one day of one week. Nil entries are empty.
type DaySlots [SectionsPerDay]*MergedCell

// WeekGrid maps week number to day to period slots.
type WeekGrid struct {
	// Weeks only contains weeks that received at least one meeting.
	Weeks map[int]map[Day]*DaySlots `json:"weeks"`
	// MaxWeek is the largest valid week number seen in the input.
	MaxWeek int `json:"maxWeek"`
}

// NewWeekGrid returns an empty grid.
func NewWeekGrid() *WeekGrid {
	return &WeekGrid{Weeks: make(map[int]map[Day]*DaySlots)}
}

// Cell returns the merged cell at the given coordinate, or nil when empty.
func (g *WeekGrid) Cell(week int, day Day, section int) *MergedCell {
	if section < 0 || section >= SectionsPerDay {
		return nil
	}
	slots := g.Weeks[week][day]
	if slots == nil {
		return nil
	}
	return slots[section]
}

// Slots returns the slot array for (week, day), creating it when missing.
func (g *WeekGrid) Slots(week int, day Day) *DaySlots {
	days, ok := g.Weeks[week]
	if !ok {
		days = make(map[Day]*DaySlots)
		g.Weeks[week] = days
	}
	slots, ok := days[day]
	if !ok {
		slots = &DaySlots{}
		days[day] = slots
	}
	return slots
}
