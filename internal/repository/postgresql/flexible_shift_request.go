package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/shift"
	"github.com/loomworks-hr/attendance-core-go/internal/pkg/database"
)

type flexibleShiftRequestRepositoryImpl struct {
	db database.Querier
}

func NewFlexibleShiftRequestRepository(db database.Querier) shift.FlexibleShiftRequestRepository {
	return &flexibleShiftRequestRepositoryImpl{db: db}
}

// GetApprovedForDate implements shift.FlexibleShiftRequestRepository.
func (r *flexibleShiftRequestRepositoryImpl) GetApprovedForDate(ctx context.Context, employeeID string, date time.Time) (shift.FlexibleShiftRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, requested_date, requested_start_time,
		       duration_hours, status, created_at, updated_at
		FROM flexible_shift_requests
		WHERE employee_id = $1
		  AND requested_date = $2
		  AND status = 'approved'
	`

	var result shift.FlexibleShiftRequest
	err := q.QueryRow(ctx, query, employeeID, date.Format("2006-01-02")).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.RequestedDate,
		&result.RequestedStartTime,
		&result.DurationHours,
		&result.Status,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.FlexibleShiftRequest{}, shift.ErrFlexibleRequestNotFound
		}
		return shift.FlexibleShiftRequest{}, fmt.Errorf("failed to get flexible shift request: %w", err)
	}

	return result, nil
}
