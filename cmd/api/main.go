package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/supremeauto/attendance-report-go/internal/config"
	"github.com/supremeauto/attendance-report-go/internal/domain/attendance"
	"github.com/supremeauto/attendance-report-go/internal/domain/employee"
	"github.com/supremeauto/attendance-report-go/internal/domain/punch"
	appHTTP "github.com/supremeauto/attendance-report-go/internal/handler/http"
	"github.com/supremeauto/attendance-report-go/internal/pkg/biotime"
	"github.com/supremeauto/attendance-report-go/internal/pkg/cron"
	"github.com/supremeauto/attendance-report-go/internal/pkg/database"
	"github.com/supremeauto/attendance-report-go/internal/pkg/render"
	"github.com/supremeauto/attendance-report-go/internal/repository/postgresql"
	attendanceService "github.com/supremeauto/attendance-report-go/internal/service/attendance"
	reportService "github.com/supremeauto/attendance-report-go/internal/service/report"
)

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

	reportHandler := appHTTP.NewReportHandler(reportSvc)
	router := appHTTP.NewRouter(cfg.App.Env, reportHandler)

	scheduler := cron.NewScheduler()
	cron.NewReportJobs(reportSvc).RegisterJobs(scheduler, cfg.Report.Interval)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
