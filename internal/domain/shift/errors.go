package shift

import "errors"

var (
	ErrInvalidTimeFormat       = errors.New("time must be in HH:MM format")
	ErrFlexibleRequestNotFound = errors.New("flexible shift request not found")
)
