package postgresql

import (
	"context"
	"fmt"

	"github.com/supremeauto/attendance-report-go/internal/domain/employee"
	"github.com/supremeauto/attendance-report-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Source {
	return &employeeRepositoryImpl{db: db}
}

// Roster implements employee.Source. Only the first area assignment is kept,
// matching what the report prints.
func (r *employeeRepositoryImpl) Roster(ctx context.Context) ([]employee.Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.emp_code, e.first_name, d.dept_name, a.area_code, a.area_name
		FROM personnel_employee e
		LEFT JOIN personnel_department d ON d.id = e.department_id
		LEFT JOIN LATERAL (
			SELECT ar.area_code, ar.area_name
			FROM personnel_employee_area ea
			JOIN personnel_area ar ON ar.id = ea.area_id
			WHERE ea.employee_id = e.id
			ORDER BY ea.id
			LIMIT 1
		) a ON true
		WHERE e.is_active
		ORDER BY e.emp_code ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", employee.ErrRosterUnavailable, err)
	}
	defer rows.Close()

	var roster []employee.Record
	for rows.Next() {
		var rec employee.Record
		if err := rows.Scan(&rec.EmpCode, &rec.EmpName, &rec.DeptName, &rec.AreaCode, &rec.AreaName); err != nil {
			return nil, fmt.Errorf("failed to scan roster row: %w", err)
		}
		roster = append(roster, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	return roster, nil
}
