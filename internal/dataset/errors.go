package dataset

import "errors"

// Dataset loading error sentinels. Callers wrap them with row and column context.
var (
	ErrMissingColumn  = errors.New("required column missing")
	ErrMalformedRow   = errors.New("malformed row")
	ErrInvalidOutcome = errors.New("class must be 0 or 1")
	ErrInvalidPayload = errors.New("payload mass must be a non-negative number")
	ErrNoRecords      = errors.New("dataset contains no launch records")
)
