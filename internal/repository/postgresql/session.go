package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/attendance"
	"github.com/loomworks-hr/attendance-core-go/internal/pkg/database"
)

type sessionRepositoryImpl struct {
	db database.Querier
}

func NewSessionRepository(db database.Querier) attendance.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

// ListWorkSessions implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) ListWorkSessions(ctx context.Context, userID string, date time.Time) ([]attendance.Session, error) {
	return r.listSessions(ctx, "work_sessions", userID, date)
}

// ListBreakSessions implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) ListBreakSessions(ctx context.Context, userID string, date time.Time) ([]attendance.Session, error) {
	return r.listSessions(ctx, "break_sessions", userID, date)
}

func (r *sessionRepositoryImpl) listSessions(ctx context.Context, table, userID string, date time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT id, user_id, date, started_at, ended_at
		FROM %s
		WHERE user_id = $1 AND date = $2
		ORDER BY started_at ASC
	`, table)

	rows, err := q.Query(ctx, query, userID, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	defer rows.Close()

	return scanSessions(rows, table)
}

func scanSessions(rows pgx.Rows, table string) ([]attendance.Session, error) {
	var sessions []attendance.Session
	for rows.Next() {
		var s attendance.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.Date, &s.StartedAt, &s.EndedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	return sessions, nil
}
