package render

import (
	"io"
	"time"

	"github.com/supremeauto/attendance-report-go/internal/domain/attendance"
)

// Renderer turns one reconciled report into a document. Both renderers emit
// the same content: one section per employee with the daily table, then the
// roster-wide summary.
type Renderer interface {
	Render(report attendance.Report, w io.Writer) error
}

// Branding is printed at the top of every sheet and page.
type Branding struct {
	CompanyName    string
	CompanyAddress string
	LogoPath       string
}

var detailHeaders = []string{"Date", "Punch In", "Punch Out", "Worked Hours", "Status"}

var summaryHeaders = []string{"Emp Code", "Emp Name", "Department", "Present", "Half Day", "Absent", "Total Hours"}

// clockString renders a nullable punch timestamp; missing punches print blank.
func clockString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

// hoursValue renders worked hours; days without a computable value print 0.
func hoursValue(h *float64) float64 {
	if h == nil {
		return 0
	}
	return *h
}
