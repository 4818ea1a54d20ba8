package timetable

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"
)

const scenarioInput = `{"data":[{"monday":[{"weeks":"1,2","className":"Math","classroomName":"R101","teacherName":"Alice"}]}]}`

func TestGenerateScenario(t *testing.T) {
	var buf bytes.Buffer
	var reports []Report
	opts := DefaultOptions()
	opts.Reporter = func(r Report) { reports = append(reports, r) }

	result, err := Generate(context.Background(), []byte(scenarioInput), &buf, opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.Grid.MaxWeek != 2 || len(result.Sheets) != 2 {
		t.Fatalf("Expected 2 weeks and 2 sheets, got %d and %d", result.Grid.MaxWeek, len(result.Sheets))
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "第1周" || sheets[1] != "第2周" {
		t.Fatalf("Unexpected sheets %v", sheets)
	}
	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			t.Fatalf("GetRows(%s) failed: %v", sheet, err)
		}
		for r, row := range rows {
			for c, value := range row {
				if r == 0 || c == 0 {
					continue
				}
				want := ""
				if r == 1 && c == 1 {
					want = "Math\nR101\nAlice"
				}
				if value != want {
					t.Errorf("%s row %d col %d = %q, expected %q", sheet, r+1, c+1, value, want)
				}
			}
		}
		if v, _ := f.GetCellValue(sheet, "B2"); v != "Math\nR101\nAlice" {
			t.Errorf("%s!B2 = %q", sheet, v)
		}
	}

	if len(reports) != 2 || reports[0].Status != StatusInProgress || reports[1].Status != StatusSuccess {
		t.Errorf("Unexpected reports %+v", reports)
	}
}

func TestGenerateSheetCountMatchesMaxWeek(t *testing.T) {
	input := `{"data":[{},{},{"thursday":[{"weeks":"3,9","className":"Art","classroomName":"R2","teacherName":"Bob"}]}]}`

	var buf bytes.Buffer
	result, err := Generate(context.Background(), []byte(input), &buf, DefaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(result.Sheets) != 9 {
		t.Errorf("Expected 9 sheets, got %d", len(result.Sheets))
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()
	if n := len(f.GetSheetList()); n != 9 {
		t.Errorf("Expected 9 worksheets, got %d", n)
	}
	if v, _ := f.GetCellValue("第9周", "E4"); v != "Art\nR2\nBob" {
		t.Errorf("Expected Art in 第9周!E4, got %q", v)
	}
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		target  error
		message string
	}{
		{"empty", "   ", ErrEmptyInput, "错误：JSON内容不能为空！"},
		{"bad json", `{"data":`, ErrMalformedJSON, "生成失败：JSON格式错误，请检查是否复制完整..."},
		{"no sections", `{"data":[]}`, ErrNoWeeks, "生成失败：没有找到有效的周次"},
		{"only invalid weeks", `{"data":[{"friday":[{"weeks":"abc,0","className":"Art","classroomName":"R2","teacherName":"Bob"}]}]}`, ErrNoWeeks, "生成失败：没有找到有效的周次"},
		{"week out of range", `{"data":[{"monday":[{"weeks":"9223372036854775807","className":"Math","classroomName":"R101","teacherName":"Alice"}]}]}`, ErrNoWeeks, "生成失败：没有找到有效的周次"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		var last Report
		opts := DefaultOptions()
		opts.Reporter = func(r Report) { last = r }

		_, err := Generate(context.Background(), []byte(tt.input), &buf, opts)
		if !errors.Is(err, tt.target) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.target, err)
		}
		if last.Status != StatusFailure || last.Message != tt.message {
			t.Errorf("%s: unexpected final report %+v", tt.name, last)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: expected no document, got %d bytes", tt.name, buf.Len())
		}
	}
}

func TestGenerateMissingData(t *testing.T) {
	var buf bytes.Buffer
	_, err := Generate(context.Background(), []byte(`{"rows":[]}`), &buf, DefaultOptions())

	var mie *MalformedInputError
	if !errors.As(err, &mie) {
		t.Fatalf("Expected MalformedInputError, got %v", err)
	}
	if Message(err) != "生成失败：JSON结构不符合预期，缺少顶层 'data' 数组" {
		t.Errorf("Expected message to name the field, got %q", Message(err))
	}
}

func TestGenerateInvalidWeeks(t *testing.T) {
	input := `{"data":[{"monday":[
		{"weeks":"abc","className":"Ghost","classroomName":"R0","teacherName":"Nobody"},
		{"weeks":"1","className":"Math","classroomName":"R101","teacherName":"Alice"},
		{"weeks":"2","className":"Math","teacherName":"Alice"}
	]}]}`

	var buf bytes.Buffer
	result, err := Generate(context.Background(), []byte(input), &buf, DefaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.Grid.MaxWeek != 1 || len(result.Sheets) != 1 {
		t.Errorf("Expected a single week, got MaxWeek %d", result.Grid.MaxWeek)
	}
	if result.Skipped != 1 {
		t.Errorf("Expected 1 skipped meeting, got %d", result.Skipped)
	}
	if got := result.Sheets[0].Rows[1].Cells[1]; got != "Math\nR101\nAlice" {
		t.Errorf("Unexpected monday cell %q", got)
	}
}

func TestGenerateOutOfRangeWeekIgnored(t *testing.T) {
	input := `{"data":[{"monday":[{"weeks":"1,100000000,9223372036854775807","className":"Math","classroomName":"R101","teacherName":"Alice"}]}]}`

	var buf bytes.Buffer
	result, err := Generate(context.Background(), []byte(input), &buf, DefaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.Grid.MaxWeek != 1 || len(result.Sheets) != 1 {
		t.Errorf("Expected only week 1, got MaxWeek %d and %d sheets", result.Grid.MaxWeek, len(result.Sheets))
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrEmptyInput, "错误：JSON内容不能为空！"},
		{NewStageError("export", errors.New("disk full")), "生成失败：export failed: disk full"},
	}

	for _, tt := range tests {
		if got := Message(tt.err); got != tt.want {
			t.Errorf("Message(%v) = %q, expected %q", tt.err, got, tt.want)
		}
	}
	if got := SuccessReport(3).Message; got != "课表生成成功！共生成 3 周课表" {
		t.Errorf("Unexpected success message %q", got)
	}
}

func TestGenerateJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON

	if _, err := Generate(context.Background(), []byte(scenarioInput), &buf, opts); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	var decoded struct {
		MaxWeek int `json:"maxWeek"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not JSON: %v", err)
	}
	if decoded.MaxWeek != 2 {
		t.Errorf("Expected maxWeek 2, got %d", decoded.MaxWeek)
	}
}

func TestGenerateSheetsFormat(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatSheets

	result, err := Generate(context.Background(), []byte(scenarioInput), &buf, opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	var decoded []struct {
		Name      string    `json:"name"`
		ColWidths []float64 `json:"col_widths"`
		Rows      []struct {
			Height float64  `json:"height"`
			Cells  []string `json:"cells"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not JSON: %v", err)
	}
	if len(decoded) != 2 || len(result.Sheets) != 2 {
		t.Fatalf("Expected 2 sheets, got %d", len(decoded))
	}
	if decoded[1].Name != "第2周" || len(decoded[1].Rows) != 13 {
		t.Errorf("Unexpected second sheet %+v", decoded[1])
	}
	if got := decoded[0].Rows[1].Cells[1]; got != "Math\nR101\nAlice" {
		t.Errorf("Unexpected monday cell %q", got)
	}
	if h := decoded[0].Rows[1].Height; h != 66 {
		t.Errorf("Expected body row height 66, got %v", h)
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = "pdf"

	if _, err := Generate(context.Background(), []byte(scenarioInput), &buf, opts); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestGenerateIndependentCalls(t *testing.T) {
	first, err := Generate(context.Background(), []byte(scenarioInput), &bytes.Buffer{}, DefaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := Generate(context.Background(), []byte(scenarioInput), &bytes.Buffer{}, DefaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if first.Grid == second.Grid {
		t.Error("Expected each call to build its own grid")
	}
}
