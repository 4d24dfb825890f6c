package attendance

import (
	"context"
	"time"
)

// Service reconciles punches with the roster into one Report.
type Service interface {
	// BuildReport assembles the dense attendance grid and summaries for the
	// reporting window ending at asOf. A zero asOf means "now".
	BuildReport(ctx context.Context, asOf time.Time) (Report, error)
}
