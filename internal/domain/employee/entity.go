package employee

// Record is one roster entry from the employee source. EmpCode is the join
// key into every derived table and must be unique within the roster.
type Record struct {
	EmpCode  string  `json:"emp_code"`
	EmpName  string  `json:"emp_name"`
	DeptName *string `json:"dept_name"`
	AreaCode *string `json:"area_code"`
	AreaName *string `json:"area_name"`
}
