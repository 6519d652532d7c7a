package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/position"
	"github.com/loomworks-hr/attendance-core-go/internal/pkg/database"
)

type positionRepositoryImpl struct {
	db database.Querier
}

func NewPositionRepository(db database.Querier) position.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

// GetActiveByName implements position.PositionRepository.
func (r *positionRepositoryImpl) GetActiveByName(ctx context.Context, name string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, level, department, COALESCE(description, ''),
		       permissions, hierarchical_access, status,
		       COALESCE(created_by, ''), created_at, updated_at
		FROM positions
		WHERE name = $1 AND status = 'active'
	`

	var result position.Position
	var permissionsJSON, accessJSON []byte

	err := q.QueryRow(ctx, query, name).Scan(
		&result.ID,
		&result.Name,
		&result.Level,
		&result.Department,
		&result.Description,
		&permissionsJSON,
		&accessJSON,
		&result.Status,
		&result.CreatedBy,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.Position{}, position.ErrPositionNotFound
		}
		return position.Position{}, fmt.Errorf("failed to get position: %w", err)
	}

	if len(permissionsJSON) > 0 {
		if err := json.Unmarshal(permissionsJSON, &result.Permissions); err != nil {
			return position.Position{}, fmt.Errorf("failed to decode position permissions: %w", err)
		}
	}

	if len(accessJSON) > 0 {
		if err := json.Unmarshal(accessJSON, &result.HierarchicalAccess); err != nil {
			return position.Position{}, fmt.Errorf("failed to decode hierarchical access: %w", err)
		}
	}

	return result, nil
}
