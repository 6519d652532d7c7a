package attendance

import "time"

// Session is a half-open work or break interval. A nil EndedAt means the
// session is still running.
type Session struct {
	ID        string
	UserID    string
	Date      time.Time // calendar day the session belongs to
	StartedAt time.Time
	EndedAt   *time.Time
}

// Duration returns the session length against "now" for open sessions.
func (s *Session) Duration(now time.Time) time.Duration {
	end := now
	if s.EndedAt != nil {
		end = *s.EndedAt
	}
	d := end.Sub(s.StartedAt)
	if d < 0 {
		return 0
	}
	return d
}

// TimelineEvent is a raw punch event as recorded by the tracking client.
// Event types are free-form labels; break folding matches them by substring.
type TimelineEvent struct {
	Type string
	Time time.Time
}
