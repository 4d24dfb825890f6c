package http

import (
	"bytes"
	"net/http"
	"time"

	"github.com/supremeauto/attendance-report-go/internal/handler/http/response"
	"github.com/supremeauto/attendance-report-go/internal/pkg/validator"
	"github.com/supremeauto/attendance-report-go/internal/service/report"
)

type ReportHandler interface {
	// GetAttendanceReport returns the reconciled report as JSON
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)

	// DownloadExcel streams the XLSX artifact
	DownloadExcel(w http.ResponseWriter, r *http.Request)

	// DownloadPDF streams the PDF artifact
	DownloadPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// asOfFromQuery parses the optional as_of override for the window end.
func asOfFromQuery(r *http.Request) (time.Time, bool) {
	asOfStr := r.URL.Query().Get("as_of")
	if validator.IsEmpty(asOfStr) {
		return time.Time{}, true
	}
	t, ok := validator.IsValidDate(asOfStr)
	if !ok {
		return time.Time{}, false
	}
	return t, true
}

// GetAttendanceReport handles GET /reports/attendance
func (h *reportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	asOf, ok := asOfFromQuery(r)
	if !ok {
		response.BadRequest(w, "as_of must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.reportService.Generate(ctx, asOf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DownloadExcel handles GET /reports/attendance/excel
func (h *reportHandlerImpl) DownloadExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	asOf, ok := asOfFromQuery(r)
	if !ok {
		response.BadRequest(w, "as_of must be in YYYY-MM-DD format", nil)
		return
	}

	// Render into memory first so a failure can still produce an error
	// response instead of a truncated download.
	var buf bytes.Buffer
	if err := h.reportService.RenderExcel(ctx, asOf, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+report.ExcelFileName)
	_, _ = w.Write(buf.Bytes())
}

// DownloadPDF handles GET /reports/attendance/pdf
func (h *reportHandlerImpl) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	asOf, ok := asOfFromQuery(r)
	if !ok {
		response.BadRequest(w, "as_of must be in YYYY-MM-DD format", nil)
		return
	}

	var buf bytes.Buffer
	if err := h.reportService.RenderPDF(ctx, asOf, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+report.PDFFileName)
	_, _ = w.Write(buf.Bytes())
}
