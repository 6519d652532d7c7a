package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/loomworks-hr/attendance-core-go/internal/domain/attendance"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionRepo struct {
	workSessions  []attendance.Session
	breakSessions []attendance.Session
	err           error
}

func (f *fakeSessionRepo) ListWorkSessions(ctx context.Context, userID string, date time.Time) ([]attendance.Session, error) {
	return f.workSessions, f.err
}

func (f *fakeSessionRepo) ListBreakSessions(ctx context.Context, userID string, date time.Time) ([]attendance.Session, error) {
	return f.breakSessions, f.err
}

type fakeShiftService struct {
	effectiveShift *shift.EffectiveShift
	err            error
}

func (f *fakeShiftService) GetEffectiveShift(ctx context.Context, userID string, date time.Time) (*shift.EffectiveShift, error) {
	return f.effectiveShift, f.err
}

func morningShift() *shift.EffectiveShift {
	return &shift.EffectiveShift{
		Start:         "09:00",
		End:           "18:00",
		DurationHours: 9,
		Source:        shift.SourceStandard,
		Type:          "standard",
		ShiftName:     "Day Shift (Morning Shift)",
	}
}

func flexiblePermanentShift() *shift.EffectiveShift {
	return &shift.EffectiveShift{
		Start:               "00:00",
		End:                 "23:59",
		DurationHours:       9,
		IsFlexible:          true,
		IsFlexiblePermanent: true,
		Source:              shift.SourceFlexiblePermanent,
		Type:                "flexiblePermanent",
	}
}

func assertExactlyOneFlag(t *testing.T, status attendance.Status) {
	t.Helper()
	count := 0
	for _, flag := range []bool{status.IsFullDay, status.IsHalfDay, status.IsAbsent} {
		if flag {
			count++
		}
	}
	assert.Equal(t, 1, count, "exactly one of fullDay/halfDay/absent must be set")
}

func TestAttendanceService_CalculateAttendanceStatus_StandardThresholds(t *testing.T) {
	svc := &AttendanceServiceImpl{}

	cases := []struct {
		name        string
		workSeconds int64
		wantFull    bool
		wantHalf    bool
		wantAbsent  bool
	}{
		{"exactly eight hours is a full day", 8 * 3600, true, false, false},
		{"just under eight hours is a half day", 8*3600 - 36, false, true, false},
		{"exactly five hours is a half day", 5 * 3600, false, true, false},
		{"just under five hours is absent", 5*3600 - 1, false, false, true},
		{"zero work is absent", 0, false, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// A long break must not rescue a short standard day.
			status := svc.CalculateAttendanceStatus(tc.workSeconds, 4*3600, morningShift())

			assert.Equal(t, tc.wantFull, status.IsFullDay)
			assert.Equal(t, tc.wantHalf, status.IsHalfDay)
			assert.Equal(t, tc.wantAbsent, status.IsAbsent)
			assertExactlyOneFlag(t, status)
		})
	}
}

func TestAttendanceService_CalculateAttendanceStatus_FlexibleRegimeUsesTotalHours(t *testing.T) {
	svc := &AttendanceServiceImpl{}

	// 8h work + 1h break: a half day under standard rules would be wrong
	// here; the flexible regime counts the break.
	status := svc.CalculateAttendanceStatus(8*3600, 1*3600, flexiblePermanentShift())
	assert.True(t, status.IsFullDay)
	assertExactlyOneFlag(t, status)

	status = svc.CalculateAttendanceStatus(4*3600, 1*3600, flexiblePermanentShift())
	assert.True(t, status.IsHalfDay)
	assertExactlyOneFlag(t, status)

	status = svc.CalculateAttendanceStatus(4*3600, 3599, flexiblePermanentShift())
	assert.True(t, status.IsAbsent)
	assertExactlyOneFlag(t, status)
}

func TestAttendanceService_CalculateAttendanceStatus_OneDayFlexibleOverrideUsesTotalHours(t *testing.T) {
	svc := &AttendanceServiceImpl{}

	oneDayFlexible := &shift.EffectiveShift{
		Start: "10:00", End: "19:00", DurationHours: 9,
		IsFlexible: true, IsOneDayFlexibleOverride: true,
		Source: shift.SourceFlexibleRequest,
	}

	status := svc.CalculateAttendanceStatus(8*3600, 1*3600, oneDayFlexible)
	assert.True(t, status.IsFullDay)
}

func TestAttendanceService_CalculateAttendanceStatus_NilShiftUsesStandardRules(t *testing.T) {
	svc := &AttendanceServiceImpl{}

	status := svc.CalculateAttendanceStatus(8*3600, 3600, nil)
	assert.True(t, status.IsFullDay)
	assert.Equal(t, 8.0, status.WorkHours)
	assert.Equal(t, 1.0, status.BreakHours)
	assert.Equal(t, 9.0, status.TotalHours)
}

func TestAttendanceService_CalculateEarlyLateArrival(t *testing.T) {
	svc := &AttendanceServiceImpl{}

	cases := []struct {
		name        string
		arrival     time.Time
		shiftStart  string
		wantEarly   bool
		wantLate    bool
		wantMinutes int
	}{
		{
			"on time",
			time.Date(2026, 8, 17, 9, 0, 0, 0, time.UTC), "09:00",
			false, false, 0,
		},
		{
			"twenty minutes late",
			time.Date(2026, 8, 17, 9, 20, 0, 0, time.UTC), "09:00",
			false, true, 20,
		},
		{
			"thirty minutes early",
			time.Date(2026, 8, 17, 8, 30, 0, 0, time.UTC), "09:00",
			true, false, -30,
		},
		{
			"exactly at the early allowance",
			time.Date(2026, 8, 17, 7, 0, 0, 0, time.UTC), "09:00",
			true, false, -120,
		},
		{
			"beyond the early allowance is not reported early",
			time.Date(2026, 8, 17, 6, 0, 0, 0, time.UTC), "09:00",
			false, false, -180,
		},
		{
			"night shift punched after midnight",
			time.Date(2026, 8, 18, 1, 30, 0, 0, time.UTC), "20:00",
			false, true, 330,
		},
		{
			"night shift punched before start",
			time.Date(2026, 8, 17, 19, 0, 0, 0, time.UTC), "20:00",
			true, false, -60,
		},
		{
			"early shift punched the evening before",
			time.Date(2026, 8, 17, 21, 0, 0, 0, time.UTC), "05:30",
			false, false, -510,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := svc.CalculateEarlyLateArrival(tc.arrival, tc.shiftStart)

			assert.Equal(t, tc.wantEarly, result.IsEarly)
			assert.Equal(t, tc.wantLate, result.IsLate)
			assert.Equal(t, tc.wantMinutes, result.MinutesDifference)
			assert.False(t, result.IsEarly && result.IsLate)
		})
	}
}

func TestAttendanceService_CalculateEarlyLateArrival_DegenerateInputs(t *testing.T) {
	svc := &AttendanceServiceImpl{}

	assert.Equal(t, attendance.EarlyLate{}, svc.CalculateEarlyLateArrival(time.Time{}, "09:00"))
	assert.Equal(t, attendance.EarlyLate{}, svc.CalculateEarlyLateArrival(time.Now(), ""))
	assert.Equal(t, attendance.EarlyLate{}, svc.CalculateEarlyLateArrival(time.Now(), "9am"))
}

func TestAttendanceService_ValidatePunchInTime(t *testing.T) {
	svc := &AttendanceServiceImpl{}
	shiftDay := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)

	t.Run("flexible shift always valid", func(t *testing.T) {
		result := svc.ValidatePunchInTime(shiftDay.Add(2*time.Hour), flexiblePermanentShift())
		assert.True(t, result.IsValid)
		assert.Equal(t, "Valid punch in for flexible shift", result.Message)
	})

	t.Run("within allowance", func(t *testing.T) {
		punch := time.Date(2026, 8, 17, 7, 1, 0, 0, time.UTC) // 119 min before 09:00
		result := svc.ValidatePunchInTime(punch, morningShift())
		assert.True(t, result.IsValid)
		assert.Equal(t, "Valid punch in time", result.Message)
	})

	t.Run("exactly at allowance boundary", func(t *testing.T) {
		punch := time.Date(2026, 8, 17, 7, 0, 0, 0, time.UTC)
		result := svc.ValidatePunchInTime(punch, morningShift())
		assert.True(t, result.IsValid)
	})

	t.Run("before allowance", func(t *testing.T) {
		punch := time.Date(2026, 8, 17, 6, 59, 0, 0, time.UTC) // 121 min before 09:00
		result := svc.ValidatePunchInTime(punch, morningShift())
		assert.False(t, result.IsValid)
		assert.Equal(t, "Cannot punch in earlier than 120 minutes before shift start time (09:00)", result.Message)
	})

	t.Run("malformed shift start", func(t *testing.T) {
		bad := morningShift()
		bad.Start = "9am"
		result := svc.ValidatePunchInTime(shiftDay, bad)
		assert.False(t, result.IsValid)
		assert.Equal(t, "Invalid shift start time format", result.Message)
	})

	t.Run("missing shift is permissive", func(t *testing.T) {
		result := svc.ValidatePunchInTime(shiftDay, nil)
		assert.True(t, result.IsValid)
	})
}

func endedAt(t time.Time) *time.Time { return &t }

func TestAttendanceService_ComputeDailyAttendance_FullStandardDay(t *testing.T) {
	date := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	sessions := &fakeSessionRepo{
		workSessions: []attendance.Session{
			{StartedAt: date.Add(9 * time.Hour), EndedAt: endedAt(date.Add(13 * time.Hour))},
			{StartedAt: date.Add(14 * time.Hour), EndedAt: endedAt(date.Add(18 * time.Hour))},
		},
		breakSessions: []attendance.Session{
			{StartedAt: date.Add(13 * time.Hour), EndedAt: endedAt(date.Add(14 * time.Hour))},
		},
	}

	svc := &AttendanceServiceImpl{
		SessionRepository: sessions,
		shiftService:      &fakeShiftService{effectiveShift: morningShift()},
		now:               func() time.Time { return date.AddDate(0, 0, 3) },
	}

	summary, err := svc.ComputeDailyAttendance(context.Background(), "u1", date)
	require.NoError(t, err)

	assert.Equal(t, "2026-08-17", summary.Date)
	assert.Equal(t, int64(8*3600), summary.WorkSeconds)
	assert.Equal(t, int64(3600), summary.BreakSeconds)
	assert.True(t, summary.Status.IsFullDay)
	assert.False(t, summary.Status.IsHalfDay)
	assert.False(t, summary.Status.IsAbsent)
	assert.False(t, summary.EarlyLate.IsLate)
	assert.False(t, summary.EarlyLate.IsEarly)
	assert.Equal(t, 0, summary.EarlyLate.MinutesDifference)
	require.NotNil(t, summary.ArrivalTime)
	assert.Equal(t, date.Add(9*time.Hour), *summary.ArrivalTime)
}

func TestAttendanceService_ComputeDailyAttendance_OpenSessionToday(t *testing.T) {
	date := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	now := date.Add(12 * time.Hour)
	sessions := &fakeSessionRepo{
		workSessions: []attendance.Session{
			{StartedAt: date.Add(9 * time.Hour)}, // still running
		},
	}

	svc := &AttendanceServiceImpl{
		SessionRepository: sessions,
		shiftService:      &fakeShiftService{effectiveShift: morningShift()},
		now:               func() time.Time { return now },
	}

	summary, err := svc.ComputeDailyAttendance(context.Background(), "u1", date)
	require.NoError(t, err)

	assert.Equal(t, int64(3*3600), summary.WorkSeconds)
	assert.True(t, summary.Status.IsAbsent)
}

func TestAttendanceService_ComputeDailyAttendance_OpenSessionOnPastDayGetsFallback(t *testing.T) {
	date := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	sessions := &fakeSessionRepo{
		workSessions: []attendance.Session{
			{StartedAt: date.Add(9 * time.Hour)}, // never punched out
		},
		breakSessions: []attendance.Session{
			{StartedAt: date.Add(13 * time.Hour)}, // never resumed
		},
	}

	svc := &AttendanceServiceImpl{
		SessionRepository: sessions,
		shiftService:      &fakeShiftService{effectiveShift: morningShift()},
		now:               func() time.Time { return date.AddDate(0, 0, 7) },
	}

	summary, err := svc.ComputeDailyAttendance(context.Background(), "u1", date)
	require.NoError(t, err)

	assert.Equal(t, int64(attendance.OpenWorkSessionFallbackSeconds), summary.WorkSeconds)
	assert.Equal(t, int64(attendance.OpenBreakSessionFallbackSeconds), summary.BreakSeconds)
	assert.True(t, summary.Status.IsFullDay)
}

func TestAttendanceService_ComputeDailyAttendance_BreakCap(t *testing.T) {
	date := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	sessions := &fakeSessionRepo{
		workSessions: []attendance.Session{
			{StartedAt: date.Add(9 * time.Hour), EndedAt: endedAt(date.Add(17 * time.Hour))},
		},
		breakSessions: []attendance.Session{
			// Corrupted row spanning six hours.
			{StartedAt: date.Add(11 * time.Hour), EndedAt: endedAt(date.Add(17 * time.Hour))},
		},
	}

	svc := &AttendanceServiceImpl{
		SessionRepository: sessions,
		shiftService:      &fakeShiftService{effectiveShift: morningShift()},
		now:               func() time.Time { return date.AddDate(0, 0, 1) },
	}

	summary, err := svc.ComputeDailyAttendance(context.Background(), "u1", date)
	require.NoError(t, err)

	assert.Equal(t, int64(attendance.MaxDailyBreakSeconds), summary.BreakSeconds)
}

func TestAttendanceService_ComputeDailyAttendance_FlexibleShiftSkipsLateness(t *testing.T) {
	date := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
	sessions := &fakeSessionRepo{
		workSessions: []attendance.Session{
			{StartedAt: date.Add(15 * time.Hour), EndedAt: endedAt(date.Add(23 * time.Hour))},
		},
	}

	svc := &AttendanceServiceImpl{
		SessionRepository: sessions,
		shiftService:      &fakeShiftService{effectiveShift: flexiblePermanentShift()},
		now:               func() time.Time { return date.AddDate(0, 0, 1) },
	}

	summary, err := svc.ComputeDailyAttendance(context.Background(), "u1", date)
	require.NoError(t, err)

	assert.Equal(t, attendance.EarlyLate{}, summary.EarlyLate)
	require.NotNil(t, summary.ArrivalTime)
}

func TestAttendanceService_ComputeDailyAttendance_ShiftResolutionFailure(t *testing.T) {
	svc := &AttendanceServiceImpl{
		SessionRepository: &fakeSessionRepo{},
		shiftService:      &fakeShiftService{err: errors.New("user not found")},
		now:               time.Now,
	}

	_, err := svc.ComputeDailyAttendance(context.Background(), "u1", time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, attendance.ErrNoShiftAssigned)
}

func TestFoldBreakTimeline(t *testing.T) {
	base := time.Date(2026, 8, 17, 12, 0, 0, 0, time.UTC)

	t.Run("pairs break start with break end", func(t *testing.T) {
		events := []attendance.TimelineEvent{
			{Type: "Break Start", Time: base},
			{Type: "Break End", Time: base.Add(30 * time.Minute)},
		}
		assert.Equal(t, int64(1800), FoldBreakTimeline(events))
	})

	t.Run("resume work closes a break", func(t *testing.T) {
		events := []attendance.TimelineEvent{
			{Type: "break start", Time: base},
			{Type: "resume work", Time: base.Add(45 * time.Minute)},
		}
		assert.Equal(t, int64(2700), FoldBreakTimeline(events))
	})

	t.Run("events are sorted before folding", func(t *testing.T) {
		events := []attendance.TimelineEvent{
			{Type: "Break End", Time: base.Add(20 * time.Minute)},
			{Type: "Break Start", Time: base},
		}
		assert.Equal(t, int64(1200), FoldBreakTimeline(events))
	})

	t.Run("unpaired start is dropped", func(t *testing.T) {
		events := []attendance.TimelineEvent{
			{Type: "Break Start", Time: base},
			{Type: "Break End", Time: base.Add(10 * time.Minute)},
			{Type: "Break Start", Time: base.Add(time.Hour)},
		}
		assert.Equal(t, int64(600), FoldBreakTimeline(events))
	})

	t.Run("unrelated events are ignored", func(t *testing.T) {
		events := []attendance.TimelineEvent{
			{Type: "Punch In", Time: base.Add(-time.Hour)},
			{Type: "Break Start", Time: base},
			{Type: "Break End", Time: base.Add(15 * time.Minute)},
			{Type: "Punch Out", Time: base.Add(6 * time.Hour)},
		}
		assert.Equal(t, int64(900), FoldBreakTimeline(events))
	})

	t.Run("empty timeline", func(t *testing.T) {
		assert.Equal(t, int64(0), FoldBreakTimeline(nil))
	})
}
