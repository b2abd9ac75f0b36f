package service

import "errors"

// ErrInvalidPeriod is returned by read-side aggregations when the requested
// period is not a valid calendar month.
var ErrInvalidPeriod = errors.New("period must be a valid calendar month")
