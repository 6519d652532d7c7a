package position

import "time"

type Capability string

const (
	// User management
	CapManageUsers Capability = "canManageUsers"

	// Client & project management
	CapManageClients  Capability = "canManageClients"
	CapManageProjects Capability = "canManageProjects"
	CapAssignTasks    Capability = "canAssignTasks"

	// HR
	CapApproveLeaves    Capability = "canApproveLeaves"
	CapApproveShifts    Capability = "canApproveShifts"
	CapViewReports      Capability = "canViewReports"
	CapManageAttendance Capability = "canManageAttendance"

	// Hierarchical data access
	CapViewSubordinateLeads     Capability = "canViewSubordinateLeads"
	CapViewSubordinateCallbacks Capability = "canViewSubordinateCallbacks"
	CapViewSubordinateTasks     Capability = "canViewSubordinateTasks"
	CapViewSubordinateProjects  Capability = "canViewSubordinateProjects"
	CapEditSubordinateLeads     Capability = "canEditSubordinateLeads"
	CapEditSubordinateCallbacks Capability = "canEditSubordinateCallbacks"
	CapAssignToSubordinates     Capability = "canAssignToSubordinates"

	// Department-wide access
	CapViewDepartmentLeads     Capability = "canViewDepartmentLeads"
	CapViewDepartmentCallbacks Capability = "canViewDepartmentCallbacks"
	CapViewDepartmentTasks     Capability = "canViewDepartmentTasks"
)

type DataScope string

const (
	ScopeOwn        DataScope = "own"
	ScopeTeam       DataScope = "team"
	ScopeDepartment DataScope = "department"
	ScopeAll        DataScope = "all"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// HierarchicalAccess configures which users a position may reach beyond its
// own record.
type HierarchicalAccess struct {
	// AccessLowerLevels grants access to same-department positions at a
	// strictly lower level
	AccessLowerLevels bool `json:"accessLowerLevels"`

	// MinimumLevelGap bounds how far below the position may reach:
	// accessible levels are [level - gap, level)
	MinimumLevelGap int `json:"minimumLevelGap"`

	// CanAccessPositions grants access to the named positions regardless of
	// department
	CanAccessPositions []string `json:"canAccessPositions"`

	DataScope DataScope `json:"dataScope"`
}

type Position struct {
	ID                 string
	Name               string
	Level              int // 0-100, higher is more senior
	Department         string
	Description        string
	Permissions        map[Capability]bool
	HierarchicalAccess HierarchicalAccess
	Status             Status
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasCapability returns the boolean value of a capability flag. Absent keys
// are false.
func (p *Position) HasCapability(capability Capability) bool {
	return p.Permissions[capability]
}

func (p *Position) IsActive() bool {
	return p.Status == StatusActive
}
