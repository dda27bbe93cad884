package commentary

import "errors"

// ErrMatchNotFound is returned when commentary references a match that does not exist
var ErrMatchNotFound = errors.New("match not found")
