package position

import "context"

// PositionRepository defines data access for organizational positions.
type PositionRepository interface {
	// GetActiveByName retrieves an active position by its unique name.
	// Inactive positions are treated as not found: every consumer handles a
	// missing position identically to "no position".
	GetActiveByName(ctx context.Context, name string) (Position, error)
}
