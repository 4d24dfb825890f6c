package employee

import "context"

// Source supplies the employee roster for a report run. Implementations own
// pagination, authentication and retries; the pipeline only sees the final
// deduplicated list.
type Source interface {
	// Roster returns every employee to be reported on.
	Roster(ctx context.Context) ([]Record, error)
}
