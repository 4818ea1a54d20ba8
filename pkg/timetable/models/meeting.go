// Package models defines data structures for timetable reshaping.
package models

// Day is a weekday key as it appears in the input document.
type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Days lists the weekdays in column order.
var Days = [7]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// SectionsPerDay is the number of fixed periods in a day.
const SectionsPerDay = 12

// Index returns the column position of d, or -1 for an unknown key.
func (d Day) Index() int {
	for i, day := range Days {
		if day == d {
			return i
		}
	}
	return -1
}

// Meeting is a single course meeting read from the input.
type Meeting struct {
	// Weeks is the comma-separated list of week numbers.
	Weeks string `json:"weeks" validate:"required"`
	// ClassName is the course name.
	ClassName string `json:"className" validate:"required"`
	// ClassroomName is the room the meeting takes place in.
	ClassroomName string `json:"classroomName" validate:"required"`
	// TeacherName is the teacher giving the meeting.
	TeacherName string `json:"teacherName" validate:"required"`
}

// Section holds one period's meetings for every weekday.
type Section struct {
	// Index is the 0-based period number, taken from the position in the input array.
	Index int `json:"index"`
	// Days holds meetings per weekday, indexed like Days.
	Days [7][]Meeting `json:"days"`
}

// Timetable is the typed form of an input document.
type Timetable struct {
	// Sections lists the periods in input order.
	Sections []Section `json:"sections"`
	// Skipped counts meetings dropped for missing or malformed fields.
	Skipped int `json:"skipped"`
}
