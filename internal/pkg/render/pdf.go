package render

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/supremeauto/attendance-report-go/internal/domain/attendance"
)

// PDFRenderer writes one page section per employee plus a summary page,
// mirroring the Excel content.
type PDFRenderer struct {
	branding Branding
}

func NewPDFRenderer(branding Branding) *PDFRenderer {
	return &PDFRenderer{branding: branding}
}

var detailWidths = []float64{32, 40, 40, 40, 25}

var summaryWidths = []float64{25, 38, 35, 18, 18, 18, 25}

func (r *PDFRenderer) Render(report attendance.Report, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	// Core fonts are cp1252; names and the address can carry accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, emp := range report.Employees {
		r.writeEmployeePage(pdf, tr, emp)
	}
	r.writeSummaryPage(pdf, tr, report)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

func (r *PDFRenderer) writeHeader(pdf *gofpdf.Fpdf, tr func(string) string) {
	if r.branding.LogoPath != "" {
		if _, err := os.Stat(r.branding.LogoPath); err == nil {
			pdf.Image(r.branding.LogoPath, 10, 8, 30, 0, false, "", 0, "")
		}
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr(r.branding.CompanyName), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, tr(r.branding.CompanyAddress), "", 1, "C", false, 0, "")
	pdf.Ln(8)
}

func (r *PDFRenderer) writeEmployeePage(pdf *gofpdf.Fpdf, tr func(string) string, emp attendance.EmployeeReport) {
	pdf.AddPage()
	r.writeHeader(pdf, tr)

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, tr("Employee ID: "+emp.EmpCode), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, tr("Employee Name: "+emp.EmpName), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, tr("Department: "+emp.Summary.DeptName), "", 1, "", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 10)
	for i, h := range detailHeaders {
		pdf.CellFormat(detailWidths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, day := range emp.Days {
		pdf.CellFormat(detailWidths[0], 7, day.Date.Format("2006-01-02"), "1", 0, "", false, 0, "")
		pdf.CellFormat(detailWidths[1], 7, clockString(day.ClockIn), "1", 0, "", false, 0, "")
		pdf.CellFormat(detailWidths[2], 7, clockString(day.ClockOut), "1", 0, "", false, 0, "")
		pdf.CellFormat(detailWidths[3], 7, fmt.Sprintf("%.2f", hoursValue(day.WorkedHours)), "1", 0, "", false, 0, "")
		pdf.CellFormat(detailWidths[4], 7, string(day.Status), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
}

func (r *PDFRenderer) writeSummaryPage(pdf *gofpdf.Fpdf, tr func(string) string, report attendance.Report) {
	pdf.AddPage()
	r.writeHeader(pdf, tr)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Attendance Summary", "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s to %s",
		report.Window.Start.Format("2006-01-02"),
		report.Window.End.Format("2006-01-02")), "", 1, "", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 9)
	for i, h := range summaryHeaders {
		pdf.CellFormat(summaryWidths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, emp := range report.Employees {
		sum := emp.Summary
		pdf.CellFormat(summaryWidths[0], 7, sum.EmpCode, "1", 0, "", false, 0, "")
		pdf.CellFormat(summaryWidths[1], 7, tr(sum.EmpName), "1", 0, "", false, 0, "")
		pdf.CellFormat(summaryWidths[2], 7, tr(sum.DeptName), "1", 0, "", false, 0, "")
		pdf.CellFormat(summaryWidths[3], 7, fmt.Sprintf("%d", sum.PresentCount), "1", 0, "C", false, 0, "")
		pdf.CellFormat(summaryWidths[4], 7, fmt.Sprintf("%d", sum.HalfDayCount), "1", 0, "C", false, 0, "")
		pdf.CellFormat(summaryWidths[5], 7, fmt.Sprintf("%d", sum.AbsentCount), "1", 0, "C", false, 0, "")
		pdf.CellFormat(summaryWidths[6], 7, fmt.Sprintf("%.2f", sum.TotalHours), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
}
