package shift

import (
	"context"
	"time"
)

// FlexibleShiftRequestRepository defines data access for one-day flexible
// shift requests.
type FlexibleShiftRequestRepository interface {
	// GetApprovedForDate returns the approved request for an employee on the
	// given calendar date, or ErrFlexibleRequestNotFound.
	GetApprovedForDate(ctx context.Context, employeeID string, date time.Time) (FlexibleShiftRequest, error)
}
