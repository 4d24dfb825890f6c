package main

import (
	"context"
	"fmt"
	"log"

	"github.com/supremeauto/attendance-report-go/internal/config"
	"github.com/supremeauto/attendance-report-go/internal/domain/attendance"
	"github.com/supremeauto/attendance-report-go/internal/domain/employee"
	"github.com/supremeauto/attendance-report-go/internal/domain/punch"
	"github.com/supremeauto/attendance-report-go/internal/pkg/biotime"
	"github.com/supremeauto/attendance-report-go/internal/pkg/database"
	"github.com/supremeauto/attendance-report-go/internal/pkg/render"
	"github.com/supremeauto/attendance-report-go/internal/repository/postgresql"
	attendanceService "github.com/supremeauto/attendance-report-go/internal/service/attendance"
	reportService "github.com/supremeauto/attendance-report-go/internal/service/report"
)

// One-shot batch run: fetch, reconcile, write both artifacts, exit.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var punchSource punch.Source
	var rosterSource employee.Source
	switch cfg.Source.Type {
	case "api":
		client := biotime.NewClient(cfg.BioTime)
		punchSource, rosterSource = client, client
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to device database:", err)
		}
		punchSource = postgresql.NewPunchRepository(db)
		rosterSource = postgresql.NewEmployeeRepository(db)
	default:
		log.Fatal("Unsupported source type: ", cfg.Source.Type)
	}

	branding := render.Branding{
		CompanyName:    cfg.Report.CompanyName,
		CompanyAddress: cfg.Report.CompanyAddress,
		LogoPath:       cfg.Report.LogoPath,
	}

	attendanceSvc := attendanceService.NewAttendanceService(punchSource, rosterSource, attendance.DefaultPolicy(), nil)
	reportSvc := reportService.NewReportService(
		attendanceSvc,
		render.NewExcelRenderer(branding),
		render.NewPDFRenderer(branding),
		cfg.Report.OutputDir,
	)

	excelPath, pdfPath, err := reportSvc.WriteArtifacts(context.Background())
	if err != nil {
		log.Fatal("Report generation failed: ", err)
	}

	fmt.Println("Excel saved:", excelPath)
	fmt.Println("PDF saved:", pdfPath)
}
