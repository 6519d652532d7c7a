package user

import "context"

// UserRepository defines data access methods for user records. The ID listing
// methods back hierarchical query filters, so they only ever return active
// users.
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// ListActiveIDs returns the IDs of every active user
	ListActiveIDs(ctx context.Context) ([]string, error)

	// ListActiveIDsByDepartment returns active user IDs within a department
	ListActiveIDsByDepartment(ctx context.Context, department string) ([]string, error)

	// ListActiveIDsByLevelRange returns active user IDs in a department whose
	// position level is in [minLevel, belowLevel)
	ListActiveIDsByLevelRange(ctx context.Context, department string, minLevel, belowLevel int) ([]string, error)

	// ListActiveIDsByPositions returns active user IDs holding any of the
	// named positions, regardless of department
	ListActiveIDsByPositions(ctx context.Context, positions []string) ([]string, error)
}
