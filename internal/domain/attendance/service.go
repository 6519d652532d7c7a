package attendance

import (
	"context"
	"time"

	"github.com/loomworks-hr/attendance-core-go/internal/domain/shift"
)

// AttendanceService defines the attendance classification operations.
type AttendanceService interface {
	// CalculateAttendanceStatus classifies a day from accumulated durations
	// and the effective shift's threshold regime.
	CalculateAttendanceStatus(workSeconds, breakSeconds int64, effectiveShift *shift.EffectiveShift) Status

	// CalculateEarlyLateArrival compares an arrival instant with a HH:MM
	// shift start, adjusting across midnight for night shifts.
	CalculateEarlyLateArrival(arrival time.Time, shiftStart string) EarlyLate

	// ValidatePunchInTime checks the early-punch guard for standard shifts.
	// Flexible shifts are always valid.
	ValidatePunchInTime(punch time.Time, effectiveShift *shift.EffectiveShift) PunchValidation

	// ComputeDailyAttendance resolves the effective shift, sums the user's
	// sessions for the date and classifies the day.
	ComputeDailyAttendance(ctx context.Context, userID string, date time.Time) (DailySummary, error)
}
