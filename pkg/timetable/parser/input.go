// Package parser turns a raw timetable JSON document into typed models.
package parser

import (
	"bytes"
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

var validate = validator.New()

// rawMeeting keeps each field undecoded so one badly typed value only drops its meeting.
type rawMeeting struct {
	Weeks         json.RawMessage `json:"weeks"`
	ClassName     json.RawMessage `json:"className"`
	ClassroomName json.RawMessage `json:"classroomName"`
	TeacherName   json.RawMessage `json:"teacherName"`
}

// Parse validates the top-level shape of input and decodes every section.
// Meetings that are not objects or lack one of the four required fields are
// counted in Timetable.Skipped and otherwise ignored.
func Parse(input []byte, log *slog.Logger) (models.Timetable, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	input = bytes.TrimSpace(input)
	if len(input) == 0 {
		return models.Timetable{}, ErrEmptyInput
	}
	if !json.Valid(input) {
		var probe any
		return models.Timetable{}, &jsonError{cause: json.Unmarshal(input, &probe)}
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(input, &top); err != nil || top == nil {
		return models.Timetable{}, NewMalformedInputError("data", "top-level value is not an object")
	}
	data, ok := top["data"]
	if !ok {
		return models.Timetable{}, NewMalformedInputError("data", "missing top-level 'data' array")
	}
	var sections []json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil || isNull(data) {
		return models.Timetable{}, NewMalformedInputError("data", "top-level 'data' field is not an array")
	}

	tt := models.Timetable{Sections: make([]models.Section, 0, len(sections))}
	for idx, raw := range sections {
		section := models.Section{Index: idx}
		var days map[string]json.RawMessage
		if err := json.Unmarshal(raw, &days); err != nil {
			log.Debug("section is not an object", "section", idx)
			tt.Sections = append(tt.Sections, section)
			continue
		}
		for d, day := range models.Days {
			value, ok := days[string(day)]
			if !ok {
				continue
			}
			var entries []json.RawMessage
			if err := json.Unmarshal(value, &entries); err != nil {
				log.Debug("day value is not an array", "section", idx, "day", day)
				continue
			}
			for i, entry := range entries {
				m, ok := decodeMeeting(entry)
				if !ok {
					tt.Skipped++
					log.Debug("skipping incomplete meeting", "section", idx, "day", day, "entry", i)
					continue
				}
				section.Days[d] = append(section.Days[d], m)
			}
		}
		tt.Sections = append(tt.Sections, section)
	}

	return tt, nil
}

func decodeMeeting(entry json.RawMessage) (models.Meeting, bool) {
	var raw rawMeeting
	if err := json.Unmarshal(entry, &raw); err != nil || isNull(entry) {
		return models.Meeting{}, false
	}
	m := models.Meeting{
		Weeks:         scalarText(raw.Weeks),
		ClassName:     scalarText(raw.ClassName),
		ClassroomName: scalarText(raw.ClassroomName),
		TeacherName:   scalarText(raw.TeacherName),
	}
	if err := validate.Struct(m); err != nil {
		return models.Meeting{}, false
	}
	return m, true
}

// scalarText renders a JSON string or number as text. Zero, null, booleans and
// composite values yield "", which the required check then rejects.
func scalarText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case c == '-' || (c >= '0' && c <= '9'):
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil || f == 0 {
			return ""
		}
		return string(raw)
	default:
		return ""
	}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
