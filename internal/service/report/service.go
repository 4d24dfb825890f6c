package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/supremeauto/attendance-report-go/internal/domain/attendance"
	"github.com/supremeauto/attendance-report-go/internal/pkg/render"
)

const (
	ExcelFileName = "Master_Attendance_Report.xlsx"
	PDFFileName   = "Master_Attendance_Report.pdf"
)

// Service builds reconciled reports and renders them into artifacts. Source
// failures degrade inside the build; a render or write failure is fatal to
// the run and surfaced.
type Service interface {
	Generate(ctx context.Context, asOf time.Time) (attendance.Report, error)
	RenderExcel(ctx context.Context, asOf time.Time, w io.Writer) error
	RenderPDF(ctx context.Context, asOf time.Time, w io.Writer) error

	// WriteArtifacts generates one report and writes both documents to the
	// output directory, returning their paths.
	WriteArtifacts(ctx context.Context) (string, string, error)
}

type ReportServiceImpl struct {
	attendanceService attendance.Service
	excel             render.Renderer
	pdf               render.Renderer
	outputDir         string
}

func NewReportService(attendanceService attendance.Service, excel, pdf render.Renderer, outputDir string) Service {
	return &ReportServiceImpl{
		attendanceService: attendanceService,
		excel:             excel,
		pdf:               pdf,
		outputDir:         outputDir,
	}
}

// Generate implements Service.
func (s *ReportServiceImpl) Generate(ctx context.Context, asOf time.Time) (attendance.Report, error) {
	report, err := s.attendanceService.BuildReport(ctx, asOf)
	if err != nil {
		return attendance.Report{}, fmt.Errorf("%w: %v", attendance.ErrReportGenerationFailed, err)
	}
	slog.Info("report built",
		"run_id", report.RunID,
		"window_start", report.Window.Start.Format("2006-01-02"),
		"window_end", report.Window.End.Format("2006-01-02"),
		"employees", len(report.Employees),
		"dropped_punches", report.DroppedPunches)
	return report, nil
}

// RenderExcel implements Service.
func (s *ReportServiceImpl) RenderExcel(ctx context.Context, asOf time.Time, w io.Writer) error {
	report, err := s.Generate(ctx, asOf)
	if err != nil {
		return err
	}
	return s.excel.Render(report, w)
}

// RenderPDF implements Service.
func (s *ReportServiceImpl) RenderPDF(ctx context.Context, asOf time.Time, w io.Writer) error {
	report, err := s.Generate(ctx, asOf)
	if err != nil {
		return err
	}
	return s.pdf.Render(report, w)
}

// WriteArtifacts implements Service.
func (s *ReportServiceImpl) WriteArtifacts(ctx context.Context) (string, string, error) {
	report, err := s.Generate(ctx, time.Time{})
	if err != nil {
		return "", "", err
	}

	excelPath := filepath.Join(s.outputDir, ExcelFileName)
	if err := writeFile(excelPath, func(w io.Writer) error { return s.excel.Render(report, w) }); err != nil {
		return "", "", fmt.Errorf("failed to write excel artifact: %w", err)
	}

	pdfPath := filepath.Join(s.outputDir, PDFFileName)
	if err := writeFile(pdfPath, func(w io.Writer) error { return s.pdf.Render(report, w) }); err != nil {
		return "", "", fmt.Errorf("failed to write pdf artifact: %w", err)
	}

	slog.Info("report artifacts written", "run_id", report.RunID, "excel", excelPath, "pdf", pdfPath)
	return excelPath, pdfPath, nil
}

func writeFile(path string, renderTo func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := renderTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
