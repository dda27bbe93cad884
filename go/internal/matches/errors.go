package matches

import "errors"

// ErrInvalidTimeRange is returned when a match's end time is not strictly after its start time
var ErrInvalidTimeRange = errors.New("end time must be after start time")

// ErrMatchNotFound is returned when a match id references no persisted match
var ErrMatchNotFound = errors.New("match not found")
