package employee

import "errors"

var (
	ErrRosterUnavailable = errors.New("employee roster could not be fetched")
)
