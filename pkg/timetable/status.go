package timetable

import (
	"errors"
	"fmt"
)

// Status is the state of a generation as reported to the caller.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusSuccess    Status = "success"
	StatusFailure    Status = "failure"
)

const failurePrefix = "生成失败："

// Report is a single status update.
type Report struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// Reporter receives status updates during Generate.
type Reporter func(Report)

func inProgressReport() Report {
	return Report{Status: StatusInProgress, Message: "正在解析和生成中，请稍候..."}
}

// SuccessReport returns the success update for a workbook with the given number of weeks.
func SuccessReport(weeks int) Report {
	return Report{Status: StatusSuccess, Message: fmt.Sprintf("课表生成成功！共生成 %d 周课表", weeks)}
}

// FailureReport returns the failure update for err.
func FailureReport(err error) Report {
	return Report{Status: StatusFailure, Message: Message(err)}
}

// Message returns the user-facing text for a generation error.
// Errors outside the input taxonomy keep their own text after the failure prefix.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var mie *MalformedInputError
	switch {
	case errors.Is(err, ErrEmptyInput):
		return "错误：JSON内容不能为空！"
	case errors.Is(err, ErrMalformedJSON):
		return failurePrefix + "JSON格式错误，请检查是否复制完整..."
	case errors.As(err, &mie):
		return failurePrefix + "JSON结构不符合预期，缺少顶层 'data' 数组"
	case errors.Is(err, ErrNoWeeks):
		return failurePrefix + "没有找到有效的周次"
	}
	return failurePrefix + err.Error()
}
