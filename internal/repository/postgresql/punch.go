package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/supremeauto/attendance-report-go/internal/domain/punch"
	"github.com/supremeauto/attendance-report-go/internal/pkg/database"
)

// punchRepositoryImpl reads raw punches straight from the device database,
// an alternative to the REST client for deployments with direct DB access.
type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.Source {
	return &punchRepositoryImpl{db: db}
}

// Events implements punch.Source.
func (r *punchRepositoryImpl) Events(ctx context.Context, start, end time.Time) ([]punch.Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT emp_code, punch_time
		FROM iclock_transaction
		WHERE punch_time BETWEEN $1 AND $2
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", punch.ErrEventsUnavailable, err)
	}
	defer rows.Close()

	var events []punch.Event
	for rows.Next() {
		var ev punch.Event
		if err := rows.Scan(&ev.EmpCode, &ev.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punch events: %w", err)
	}
	return events, nil
}
