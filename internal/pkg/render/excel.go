package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/supremeauto/attendance-report-go/internal/domain/attendance"
)

// ExcelRenderer writes one sheet per employee plus a Summary sheet.
type ExcelRenderer struct {
	branding Branding
}

func NewExcelRenderer(branding Branding) *ExcelRenderer {
	return &ExcelRenderer{branding: branding}
}

const (
	headerRow    = 9 // detail table header; rows 1-6 carry branding and the employee block
	sheetNameMax = 31
)

func (r *ExcelRenderer) Render(report attendance.Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newExcelStyles(f)
	if err != nil {
		return fmt.Errorf("failed to create styles: %w", err)
	}

	used := map[string]bool{"Summary": true, "Sheet1": true}
	for _, emp := range report.Employees {
		sheet := uniqueSheetName(emp.EmpName, used)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
		}
		if err := r.writeEmployeeSheet(f, sheet, emp, styles); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", sheet, err)
		}
	}

	if err := r.writeSummarySheet(f, report, styles); err != nil {
		return fmt.Errorf("failed to write summary sheet: %w", err)
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

type excelStyles struct {
	title    int
	subtitle int
	label    int
	header   int
	status   map[attendance.Status]int
}

func newExcelStyles(f *excelize.File) (excelStyles, error) {
	var s excelStyles
	var err error

	s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return s, err
	}
	s.subtitle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Italic: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return s, err
	}
	s.label, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "000080"},
	})
	if err != nil {
		return s, err
	}
	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return s, err
	}

	fills := map[attendance.Status][2]string{
		attendance.StatusPresent: {"#C6EFCE", "006100"},
		attendance.StatusHalfDay: {"#FFEB9C", "9C5700"},
		attendance.StatusAbsent:  {"#FFC7CE", "9C0006"},
	}
	s.status = make(map[attendance.Status]int, len(fills))
	for status, colors := range fills {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{colors[0]}, Pattern: 1},
			Font: &excelize.Font{Color: colors[1]},
		})
		if err != nil {
			return s, err
		}
		s.status[status] = id
	}
	return s, nil
}

func (r *ExcelRenderer) writeEmployeeSheet(f *excelize.File, sheet string, emp attendance.EmployeeReport, styles excelStyles) error {
	if err := f.SetColWidth(sheet, "A", "E", 20); err != nil {
		return err
	}

	if err := f.MergeCell(sheet, "A1", "E1"); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", r.branding.CompanyName)
	f.SetCellStyle(sheet, "A1", "E1", styles.title)

	if err := f.MergeCell(sheet, "A2", "E2"); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A2", r.branding.CompanyAddress)
	f.SetCellStyle(sheet, "A2", "E2", styles.subtitle)

	labels := [][2]interface{}{
		{"Employee ID", emp.EmpCode},
		{"Employee Name", emp.EmpName},
		{"Department", emp.Summary.DeptName},
	}
	for i, l := range labels {
		row := 4 + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), l[0])
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), styles.label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), l[1])
	}

	for col, h := range detailHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, headerRow)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, styles.header)
	}

	for i, day := range emp.Days {
		row := headerRow + 1 + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), day.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), clockString(day.ClockIn))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), clockString(day.ClockOut))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), hoursValue(day.WorkedHours))
		statusCell := fmt.Sprintf("E%d", row)
		f.SetCellValue(sheet, statusCell, string(day.Status))
		if id, ok := styles.status[day.Status]; ok {
			f.SetCellStyle(sheet, statusCell, statusCell, id)
		}
	}
	return nil
}

func (r *ExcelRenderer) writeSummarySheet(f *excelize.File, report attendance.Report, styles excelStyles) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", "G", 18); err != nil {
		return err
	}

	for col, h := range summaryHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, styles.header)
	}

	for i, emp := range report.Employees {
		row := 2 + i
		sum := emp.Summary
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), sum.EmpCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sum.EmpName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), sum.DeptName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), sum.PresentCount)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), sum.HalfDayCount)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), sum.AbsentCount)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), sum.TotalHours)
	}
	return nil
}

// uniqueSheetName truncates to Excel's 31-char limit and suffixes duplicates,
// since two employees can share a name.
func uniqueSheetName(name string, used map[string]bool) string {
	base := name
	if len(base) > sheetNameMax {
		base = base[:sheetNameMax]
	}
	candidate := base
	for n := 2; used[candidate]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		trimmed := base
		if len(trimmed)+len(suffix) > sheetNameMax {
			trimmed = trimmed[:sheetNameMax-len(suffix)]
		}
		candidate = trimmed + suffix
	}
	used[candidate] = true
	return candidate
}
