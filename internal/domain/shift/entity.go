package shift

import (
	"time"

	"github.com/loomworks-hr/attendance-core-go/internal/domain/user"
)

// ShiftSource records which precedence rule produced an effective shift.
type ShiftSource string

const (
	SourceOverride          ShiftSource = "override"
	SourceFlexiblePermanent ShiftSource = "flexiblePermanent"
	SourceFlexibleRequest   ShiftSource = "flexibleRequest"
	SourceStandard          ShiftSource = "standard"
	SourceStandardFallback  ShiftSource = "standard_fallback"
	SourceDefault           ShiftSource = "default"
)

// EffectiveShift is the single shift definition in force for one user on one
// calendar date. It is derived on every query and never persisted: overrides
// and approvals can change between calls.
type EffectiveShift struct {
	Start         string  `json:"start"` // HH:MM
	End           string  `json:"end"`   // HH:MM
	DurationHours float64 `json:"durationHours"`

	IsFlexible          bool `json:"isFlexible"`
	IsFlexiblePermanent bool `json:"isFlexiblePermanent"`

	// IsOneDayFlexibleOverride marks a standard-shift employee working a
	// single flexible day; it switches the attendance threshold regime.
	IsOneDayFlexibleOverride bool `json:"isOneDayFlexibleOverride"`

	Source    ShiftSource `json:"source"`
	Type      string      `json:"type"`
	ShiftName string      `json:"shiftName"`
}

// IsFlexibleRegime reports whether attendance for this shift is classified on
// total hours (work + break) rather than work hours alone.
func (s *EffectiveShift) IsFlexibleRegime() bool {
	return s.IsFlexiblePermanent || s.IsOneDayFlexibleOverride
}

// Unrestricted reports whether punch-in validation applies to this shift.
func (s *EffectiveShift) Unrestricted() bool {
	return s.IsFlexible || s.IsFlexiblePermanent || s.IsOneDayFlexibleOverride
}

// StandardShift is one of the four fixed company shifts.
type StandardShift struct {
	Name          string
	Start         string
	End           string
	DurationHours float64
}

// StandardShifts is the fixed table of named shifts selectable via a user's
// standard shift type.
var StandardShifts = map[user.StandardShiftType]StandardShift{
	user.StandardShiftMorning: {Name: "Day Shift (Morning Shift)", Start: "09:00", End: "18:00", DurationHours: 9},
	user.StandardShiftEvening: {Name: "Evening Shift", Start: "13:00", End: "22:00", DurationHours: 9},
	user.StandardShiftNight:   {Name: "Night Shift", Start: "20:00", End: "05:00", DurationHours: 9},
	user.StandardShiftEarly:   {Name: "Early Morning Shift", Start: "05:30", End: "14:30", DurationHours: 9},
}

// RequestStatus is the review state of a flexible shift request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// FlexibleShiftRequest is a one-day exception requested by a standard-shift
// employee. Only approved rows are ever consulted by the resolver.
type FlexibleShiftRequest struct {
	ID                 string
	EmployeeID         string
	RequestedDate      time.Time // calendar date, midnight
	RequestedStartTime string    // HH:MM
	DurationHours      float64
	Status             RequestStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
