package attendance

import (
	"context"
	"time"
)

// SessionRepository defines data access for recorded work and break
// sessions. Both listings are scoped to a single calendar date; filtering by
// date at the source keeps cross-day sessions out of daily sums.
type SessionRepository interface {
	ListWorkSessions(ctx context.Context, userID string, date time.Time) ([]Session, error)
	ListBreakSessions(ctx context.Context, userID string, date time.Time) ([]Session, error)
}
