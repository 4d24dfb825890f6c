package attendance

import "errors"

var (
	ErrInvalidAsOfDate        = errors.New("as_of must be a valid YYYY-MM-DD date")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)
