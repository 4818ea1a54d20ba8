package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/ukaji3/timetable-go/pkg/timetable"
	"github.com/ukaji3/timetable-go/pkg/timetable/xlsx"
)

// handleGenerate runs the pipeline on the request body and parks the workbook
// behind a one-shot download token.
// POST /api/timetable
func (s *Server) handleGenerate(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Server.MaxUploadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, timetable.FailureReport(
				fmt.Errorf("请求内容超过 %d 字节", s.cfg.Server.MaxUploadBytes)))
			return
		}
		c.JSON(http.StatusBadRequest, timetable.FailureReport(err))
		return
	}

	opts := timetable.DefaultOptions()
	opts.Style = s.cfg.Style()
	opts.WeekLimit = s.cfg.Limits.MaxWeek
	opts.Logger = s.log

	var buf bytes.Buffer
	result, err := timetable.Generate(c.Request.Context(), body, &buf, opts)
	if err != nil {
		status := http.StatusBadRequest
		var stageErr *timetable.StageError
		if errors.As(err, &stageErr) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, timetable.FailureReport(err))
		return
	}

	token := s.downloads.put(buf.Bytes(), s.cfg.Export.Filename, s.cfg.Server.DownloadTTL.Duration)
	c.JSON(http.StatusOK, gin.H{
		"status":      timetable.StatusSuccess,
		"message":     timetable.SuccessReport(len(result.Sheets)).Message,
		"weeks":       result.Grid.MaxWeek,
		"skipped":     result.Skipped,
		"downloadUrl": "/api/timetable/download/" + token,
	})
}

// handleDownload serves a parked workbook once.
// GET /api/timetable/download/:token
func (s *Server) handleDownload(c *gin.Context) {
	item, ok := s.downloads.take(c.Param("token"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "download link expired"})
		return
	}

	c.Header("Content-Disposition", attachmentDisposition(item.filename))
	c.Data(http.StatusOK, xlsx.ContentType, item.data)
}

// attachmentDisposition quotes ASCII names; other names use the RFC 5987 form.
func attachmentDisposition(filename string) string {
	for _, r := range filename {
		if r > unicode.MaxASCII {
			return "attachment; filename*=UTF-8''" + url.QueryEscape(filename)
		}
	}
	return `attachment; filename="` + strings.ReplaceAll(filename, `"`, `\"`) + `"`
}
