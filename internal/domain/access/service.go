package access

import (
	"context"

	"github.com/loomworks-hr/attendance-core-go/internal/domain/position"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/user"
)

// AccessService answers who a user may see and what they may do. It is the
// single source of truth for building query filters and point-access checks.
//
// All methods fail closed: callers must map any returned error to
// "self only" / deny, never to wider access.
type AccessService interface {
	// AccessibleUserIDs returns the deduplicated set of user IDs the
	// requester may read or write. Ordering is not significant.
	AccessibleUserIDs(ctx context.Context, requester user.User) ([]string, error)

	// CanAccessUserData reports whether the requester may touch the target
	// user's data. Always true for the requester's own ID.
	CanAccessUserData(ctx context.Context, requester user.User, targetUserID string) (bool, error)

	// HasPermission reports whether the requester's position grants a
	// capability. Super-admins hold every capability.
	HasPermission(ctx context.Context, requester user.User, capability position.Capability) (bool, error)

	// DataScope reports the requester's effective data scope.
	DataScope(ctx context.Context, requester user.User) (position.DataScope, error)

	// SubordinateUserIDs returns the users below the requester in the
	// hierarchy, excluding the requester. Role-shortcut users have no
	// subordinate set; they see everything instead.
	SubordinateUserIDs(ctx context.Context, requester user.User) ([]string, error)
}
