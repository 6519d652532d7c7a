package attendance

// Attendance rule constants. Policy changes happen here, not in the
// classification logic.
const (
	// Standard shifts classify on work hours only; break time never counts.
	MinHalfDayWorkHours = 5.0
	MinFullDayWorkHours = 8.0

	// Flexible-permanent and one-day flexible shifts classify on total hours
	// (work + break; a full day is 8h work + 1h break).
	FlexibleMinHalfDayTotalHours = 5.0
	FlexibleMinFullDayTotalHours = 9.0

	// EarlyPunchAllowanceMinutes is how far before shift start a standard
	// shift may punch in, and the cutoff beyond which an arrival is no
	// longer reported as "early".
	EarlyPunchAllowanceMinutes = 120
)

// Caps applied when summing session durations, guarding against corrupted
// open-ended sessions from past days.
const (
	MaxDailyWorkSeconds  = 24 * 60 * 60
	MaxDailyBreakSeconds = 4 * 60 * 60

	// Fallbacks for sessions on past dates that were never closed.
	OpenWorkSessionFallbackSeconds  = 8 * 60 * 60
	OpenBreakSessionFallbackSeconds = 30 * 60
)
