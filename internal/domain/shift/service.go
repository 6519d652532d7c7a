package shift

import (
	"context"
	"time"
)

// ShiftService resolves the shift in force for a user on a date.
type ShiftService interface {
	// GetEffectiveShift applies the precedence chain
	// override > flexible-permanent > approved request > standard > default
	// and returns exactly one shift. Any lookup failure surfaces as an error;
	// callers must treat an error as "no shift" and mark the day absent,
	// never present.
	GetEffectiveShift(ctx context.Context, userID string, date time.Time) (*EffectiveShift, error)
}
