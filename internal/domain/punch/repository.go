package punch

import (
	"context"
	"time"
)

// Source supplies raw punch events for a reporting window. Implementations
// own pagination, authentication and retries.
type Source interface {
	// Events returns all punches with start <= timestamp <= end.
	Events(ctx context.Context, start, end time.Time) ([]Event, error)
}
