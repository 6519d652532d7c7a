package attendance

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/loomworks-hr/attendance-core-go/internal/domain/attendance"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/shift"
)

type AttendanceServiceImpl struct {
	attendance.SessionRepository
	shiftService shift.ShiftService

	// now is swappable in tests; open sessions are measured against it.
	now func() time.Time
}

func NewAttendanceService(
	sessionRepo attendance.SessionRepository,
	shiftService shift.ShiftService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		SessionRepository: sessionRepo,
		shiftService:      shiftService,
		now:               time.Now,
	}
}

// CalculateAttendanceStatus implements attendance.AttendanceService.
//
// Flexible-permanent and one-day flexible shifts classify on total hours
// (work + break); standard shifts classify on work hours only. Thresholds
// are inclusive at the lower bound.
func (a *AttendanceServiceImpl) CalculateAttendanceStatus(workSeconds, breakSeconds int64, effectiveShift *shift.EffectiveShift) attendance.Status {
	workHours := float64(workSeconds) / 3600
	breakHours := float64(breakSeconds) / 3600
	totalHours := workHours + breakHours

	status := attendance.Status{
		WorkHours:  workHours,
		BreakHours: breakHours,
		TotalHours: totalHours,
	}

	if effectiveShift != nil && effectiveShift.IsFlexibleRegime() {
		switch {
		case totalHours >= attendance.FlexibleMinFullDayTotalHours:
			status.IsFullDay = true
		case totalHours >= attendance.FlexibleMinHalfDayTotalHours:
			status.IsHalfDay = true
		default:
			status.IsAbsent = true
		}
		return status
	}

	switch {
	case workHours >= attendance.MinFullDayWorkHours:
		status.IsFullDay = true
	case workHours >= attendance.MinHalfDayWorkHours:
		status.IsHalfDay = true
	default:
		status.IsAbsent = true
	}
	return status
}

// CalculateEarlyLateArrival implements attendance.AttendanceService.
//
// The shift start is pinned to the arrival's calendar day, then shifted by
// one day when the combination of start hour and arrival hour indicates a
// shift crossing midnight. This is a heuristic, not general interval math;
// replacing it with shift-end-aware interval logic must not change this
// signature.
func (a *AttendanceServiceImpl) CalculateEarlyLateArrival(arrival time.Time, shiftStart string) attendance.EarlyLate {
	if arrival.IsZero() || shiftStart == "" {
		return attendance.EarlyLate{}
	}

	hour, minute, err := shift.ParseClock(shiftStart)
	if err != nil {
		return attendance.EarlyLate{}
	}

	arrivalUTC := arrival.UTC()
	start := time.Date(arrivalUTC.Year(), arrivalUTC.Month(), arrivalUTC.Day(), hour, minute, 0, 0, time.UTC)

	if hour < 6 && arrivalUTC.Hour() >= 18 {
		// Early-morning start but evening arrival: the shift starts tomorrow.
		start = start.AddDate(0, 0, 1)
	} else if hour >= 20 && arrivalUTC.Hour() < 12 {
		// Night start but morning arrival: the shift started yesterday.
		start = start.AddDate(0, 0, -1)
	}

	minutesDifference := int(math.Round(arrivalUTC.Sub(start).Minutes()))

	return attendance.EarlyLate{
		// Punching in more than the allowance ahead is not "early"; that
		// case is governed by punch validation.
		IsEarly:           minutesDifference < 0 && minutesDifference >= -attendance.EarlyPunchAllowanceMinutes,
		IsLate:            minutesDifference > 0,
		MinutesDifference: minutesDifference,
	}
}

// ValidatePunchInTime implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ValidatePunchInTime(punch time.Time, effectiveShift *shift.EffectiveShift) attendance.PunchValidation {
	if effectiveShift != nil && effectiveShift.Unrestricted() {
		return attendance.PunchValidation{IsValid: true, Message: "Valid punch in for flexible shift"}
	}

	if effectiveShift != nil && effectiveShift.Start != "" {
		hour, minute, err := shift.ParseClock(effectiveShift.Start)
		if err != nil {
			return attendance.PunchValidation{IsValid: false, Message: "Invalid shift start time format"}
		}

		shiftStart := time.Date(punch.Year(), punch.Month(), punch.Day(), hour, minute, 0, 0, punch.Location())
		earliestAllowed := shiftStart.Add(-attendance.EarlyPunchAllowanceMinutes * time.Minute)

		if punch.Before(earliestAllowed) {
			return attendance.PunchValidation{
				IsValid: false,
				Message: fmt.Sprintf(
					"Cannot punch in earlier than %d minutes before shift start time (%s)",
					attendance.EarlyPunchAllowanceMinutes, effectiveShift.Start,
				),
			}
		}
	}

	return attendance.PunchValidation{IsValid: true, Message: "Valid punch in time"}
}

// ComputeDailyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ComputeDailyAttendance(ctx context.Context, userID string, date time.Time) (attendance.DailySummary, error) {
	effectiveShift, err := a.shiftService.GetEffectiveShift(ctx, userID, date)
	if err != nil {
		return attendance.DailySummary{}, fmt.Errorf("%w: %v", attendance.ErrNoShiftAssigned, err)
	}

	workSessions, err := a.SessionRepository.ListWorkSessions(ctx, userID, date)
	if err != nil {
		return attendance.DailySummary{}, fmt.Errorf("failed to list work sessions: %w", err)
	}

	breakSessions, err := a.SessionRepository.ListBreakSessions(ctx, userID, date)
	if err != nil {
		return attendance.DailySummary{}, fmt.Errorf("failed to list break sessions: %w", err)
	}

	now := a.now()
	isToday := sameCalendarDay(date, now)

	workSeconds := sumSessions(workSessions, now, isToday, attendance.OpenWorkSessionFallbackSeconds, attendance.MaxDailyWorkSeconds)
	breakSeconds := sumSessions(breakSessions, now, isToday, attendance.OpenBreakSessionFallbackSeconds, attendance.MaxDailyBreakSeconds)

	if workSeconds > attendance.MaxDailyWorkSeconds {
		workSeconds = attendance.MaxDailyWorkSeconds
	}
	if breakSeconds > attendance.MaxDailyBreakSeconds {
		breakSeconds = attendance.MaxDailyBreakSeconds
	}

	status := a.CalculateAttendanceStatus(workSeconds, breakSeconds, effectiveShift)

	summary := attendance.DailySummary{
		UserID:         userID,
		Date:           date.Format("2006-01-02"),
		EffectiveShift: effectiveShift,
		Status:         status,
		WorkSeconds:    workSeconds,
		BreakSeconds:   breakSeconds,
	}

	if arrival := firstSessionStart(workSessions); arrival != nil {
		summary.ArrivalTime = arrival
		if !effectiveShift.IsFlexible && !effectiveShift.IsFlexiblePermanent && !effectiveShift.IsOneDayFlexibleOverride {
			summary.EarlyLate = a.CalculateEarlyLateArrival(*arrival, effectiveShift.Start)
		}
	}

	return summary, nil
}

// sumSessions totals session durations in seconds. Open sessions on the
// current day run until now; open sessions on past days get the fallback
// duration since their real end is unrecoverable. Each session is capped to
// keep one corrupted row from poisoning the day.
func sumSessions(sessions []attendance.Session, now time.Time, isToday bool, openFallbackSeconds, capSeconds int64) int64 {
	var total int64
	for _, session := range sessions {
		var end time.Time
		switch {
		case session.EndedAt != nil:
			end = *session.EndedAt
		case isToday:
			end = now
		default:
			end = session.StartedAt.Add(time.Duration(openFallbackSeconds) * time.Second)
		}

		seconds := int64(end.Sub(session.StartedAt).Seconds())
		if seconds < 0 {
			seconds = 0
		}
		if seconds > capSeconds {
			seconds = capSeconds
		}
		total += seconds
	}
	return total
}

func firstSessionStart(sessions []attendance.Session) *time.Time {
	var earliest *time.Time
	for i := range sessions {
		start := sessions[i].StartedAt
		if earliest == nil || start.Before(*earliest) {
			earliest = &start
		}
	}
	return earliest
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FoldBreakTimeline folds a raw punch-event timeline into total break
// seconds. Break starts pair with the next break end or resume-work event;
// unpaired events are dropped.
func FoldBreakTimeline(events []attendance.TimelineEvent) int64 {
	if len(events) == 0 {
		return 0
	}

	sorted := make([]attendance.TimelineEvent, 0, len(events))
	for _, event := range events {
		if event.Type != "" && !event.Time.IsZero() {
			sorted = append(sorted, event)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	var totalSeconds float64
	var breakStart *time.Time

	for _, event := range sorted {
		eventType := strings.ToLower(event.Type)
		eventTime := event.Time

		if strings.Contains(eventType, "break start") {
			breakStart = &eventTime
		} else if (strings.Contains(eventType, "break end") || strings.Contains(eventType, "resume work")) && breakStart != nil {
			totalSeconds += eventTime.Sub(*breakStart).Seconds()
			breakStart = nil
		}
	}

	return int64(math.Round(totalSeconds))
}
