package user

import "time"

type Role string

const (
	RoleSuperAdmin    Role = "super-admin"
	RoleSuperAdminAlt Role = "superadmin" // legacy spelling still present in historic records
	RoleAdmin         Role = "admin"
	RoleEmployee      Role = "employee"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type ShiftType string

const (
	ShiftTypeStandard          ShiftType = "standard"
	ShiftTypeFlexiblePermanent ShiftType = "flexiblePermanent"
)

type StandardShiftType string

const (
	StandardShiftMorning StandardShiftType = "morning"
	StandardShiftEvening StandardShiftType = "evening"
	StandardShiftNight   StandardShiftType = "night"
	StandardShiftEarly   StandardShiftType = "early"
)

// Shift is the fixed shift window stored directly on a user. It only applies
// when no standard shift type is assigned.
type Shift struct {
	Name          string  `json:"name"`
	Start         string  `json:"start"` // HH:MM
	End           string  `json:"end"`   // HH:MM
	DurationHours float64 `json:"durationHours"`
	IsFlexible    bool    `json:"isFlexible"`
}

// ShiftOverride is a per-date exception stored on the user, keyed by the
// YYYY-MM-DD calendar date it applies to.
type ShiftOverride struct {
	Name          string  `json:"name"`
	Start         string  `json:"start"`
	End           string  `json:"end"`
	DurationHours float64 `json:"durationHours"`
	Type          string  `json:"type"` // "flexible" or "standard"
}

type User struct {
	ID                string
	EmployeeID        string
	Name              string
	Email             string
	Role              Role
	Status            Status
	Department        string
	Position          string // position name, empty when unassigned
	PositionLevel     int    // 0 means unassigned
	ShiftType         ShiftType
	StandardShiftType StandardShiftType
	Shift             *Shift
	ShiftOverrides    map[string]ShiftOverride
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasRoleShortcut reports whether the user's role bypasses hierarchical
// access entirely.
func (u *User) HasRoleShortcut() bool {
	return u.Role == RoleSuperAdmin || u.Role == RoleSuperAdminAlt || u.Role == RoleAdmin
}

// IsSuperAdmin matches both spellings found in historic data.
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin || u.Role == RoleSuperAdminAlt
}

func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// HasPosition reports whether the user carries a usable position assignment.
// A missing level makes the position unusable for hierarchy resolution.
func (u *User) HasPosition() bool {
	return u.Position != "" && u.PositionLevel != 0
}
