package punch

import "errors"

var (
	ErrEventsUnavailable = errors.New("punch events could not be fetched")
)
