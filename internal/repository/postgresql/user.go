package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/user"
	"github.com/loomworks-hr/attendance-core-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db database.Querier
}

func NewUserRepository(db database.Querier) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, name, email, role, status, department,
		       COALESCE(position, ''), COALESCE(position_level, 0),
		       shift_type, COALESCE(standard_shift_type, ''),
		       shift, shift_overrides,
		       created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var result user.User
	var shiftJSON, overridesJSON []byte

	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.Name,
		&result.Email,
		&result.Role,
		&result.Status,
		&result.Department,
		&result.Position,
		&result.PositionLevel,
		&result.ShiftType,
		&result.StandardShiftType,
		&shiftJSON,
		&overridesJSON,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	if len(shiftJSON) > 0 {
		var s user.Shift
		if err := json.Unmarshal(shiftJSON, &s); err != nil {
			return user.User{}, fmt.Errorf("failed to decode user shift: %w", err)
		}
		result.Shift = &s
	}

	if len(overridesJSON) > 0 {
		if err := json.Unmarshal(overridesJSON, &result.ShiftOverrides); err != nil {
			return user.User{}, fmt.Errorf("failed to decode shift overrides: %w", err)
		}
	}

	return result, nil
}

// ListActiveIDs implements user.UserRepository.
func (r *userRepositoryImpl) ListActiveIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id FROM users WHERE status = 'active'`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active users: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

// ListActiveIDsByDepartment implements user.UserRepository.
func (r *userRepositoryImpl) ListActiveIDsByDepartment(ctx context.Context, department string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id FROM users WHERE status = 'active' AND department = $1`

	rows, err := q.Query(ctx, query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list department users: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

// ListActiveIDsByLevelRange implements user.UserRepository.
func (r *userRepositoryImpl) ListActiveIDsByLevelRange(ctx context.Context, department string, minLevel, belowLevel int) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id FROM users
		WHERE status = 'active'
		  AND department = $1
		  AND position_level >= $2
		  AND position_level < $3
	`

	rows, err := q.Query(ctx, query, department, minLevel, belowLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by level range: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

// ListActiveIDsByPositions implements user.UserRepository.
func (r *userRepositoryImpl) ListActiveIDsByPositions(ctx context.Context, positions []string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id FROM users WHERE status = 'active' AND position = ANY($1)`

	rows, err := q.Query(ctx, query, positions)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by position: %w", err)
	}
	defer rows.Close()

	return scanIDs(rows)
}

func scanIDs(rows pgx.Rows) ([]string, error) {
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user ids: %w", err)
	}
	return ids, nil
}
