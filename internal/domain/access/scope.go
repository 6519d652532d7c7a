package access

import "github.com/loomworks-hr/attendance-core-go/internal/domain/position"

// ScopeKind tags which access strategy applies to a requester. The kinds form
// an ordered chain; resolution stops at the first applicable one.
type ScopeKind string

const (
	// ScopeRoleShortcut: admin and super-admin roles, every active user.
	ScopeRoleShortcut ScopeKind = "roleShortcut"

	// ScopeAll: position-granted access to every active user.
	ScopeAll ScopeKind = "all"

	// ScopeDepartment: every active user in the requester's department.
	ScopeDepartment ScopeKind = "department"

	// ScopeTeam: self, lower levels within the department, and any
	// explicitly listed positions.
	ScopeTeam ScopeKind = "team"

	// ScopeOwn: self only. Also the fail-closed terminal for missing
	// positions and unknown scopes.
	ScopeOwn ScopeKind = "own"
)

// Decision is the resolved access strategy for a requester. Team decisions
// carry the hierarchy parameters needed to execute them.
type Decision struct {
	Kind ScopeKind

	// Set only for ScopeTeam.
	AccessLowerLevels  bool
	MinimumLevelGap    int
	CanAccessPositions []string
}

// DataScope maps a decision back onto the reported position scope.
func (d Decision) DataScope() position.DataScope {
	switch d.Kind {
	case ScopeRoleShortcut, ScopeAll:
		return position.ScopeAll
	case ScopeDepartment:
		return position.ScopeDepartment
	case ScopeTeam:
		return position.ScopeTeam
	default:
		return position.ScopeOwn
	}
}
