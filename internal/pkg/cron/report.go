package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/supremeauto/attendance-report-go/internal/service/report"
)

// ReportJobs regenerates the report artifacts on a schedule so HR always has
// a current copy on disk without asking for one.
type ReportJobs struct {
	reportService report.Service
}

func NewReportJobs(reportService report.Service) *ReportJobs {
	return &ReportJobs{reportService: reportService}
}

func (j *ReportJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("regenerate_report_artifacts", interval, j.RegenerateArtifacts)
}

func (j *ReportJobs) RegenerateArtifacts(ctx context.Context) error {
	excelPath, pdfPath, err := j.reportService.WriteArtifacts(ctx)
	if err != nil {
		return err
	}
	slog.Info("Cron: report artifacts regenerated", "excel", excelPath, "pdf", pdfPath)
	return nil
}
