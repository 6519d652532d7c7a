package attendance

import (
	"time"

	"github.com/loomworks-hr/attendance-core-go/internal/domain/shift"
)

// Status is the classification of one day. Exactly one of the three booleans
// is true.
type Status struct {
	IsFullDay bool `json:"isFullDay"`
	IsHalfDay bool `json:"isHalfDay"`
	IsAbsent  bool `json:"isAbsent"`

	WorkHours  float64 `json:"workHours"`
	BreakHours float64 `json:"breakHours"`
	TotalHours float64 `json:"totalHours"`
}

// EarlyLate reports arrival against shift start. Flexible shifts never
// report lateness.
type EarlyLate struct {
	IsEarly           bool `json:"isEarly"`
	IsLate            bool `json:"isLate"`
	MinutesDifference int  `json:"minutesDifference"` // negative = early, positive = late
}

// PunchValidation is the structured result of a punch-in check. It is always
// returned, never an error: a rejected punch carries a human-readable message.
type PunchValidation struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message"`
}

// DailySummary is the full attendance picture for one user on one date.
type DailySummary struct {
	UserID         string                `json:"userId"`
	Date           string                `json:"date"` // YYYY-MM-DD
	EffectiveShift *shift.EffectiveShift `json:"effectiveShift"`
	Status         Status                `json:"status"`
	EarlyLate      EarlyLate             `json:"earlyLate"`
	WorkSeconds    int64                 `json:"workDurationSeconds"`
	BreakSeconds   int64                 `json:"breakDurationSeconds"`
	ArrivalTime    *time.Time            `json:"arrivalTime,omitempty"`
}
