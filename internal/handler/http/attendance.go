package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/loomworks-hr/attendance-core-go/internal/domain/attendance"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/shift"
	"github.com/loomworks-hr/attendance-core-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	GetEffectiveShift(w http.ResponseWriter, r *http.Request)
	CalculateStatus(w http.ResponseWriter, r *http.Request)
	CalculateArrival(w http.ResponseWriter, r *http.Request)
	ValidatePunchIn(w http.ResponseWriter, r *http.Request)
	GetDailySummary(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	shiftService      shift.ShiftService
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(
	shiftService shift.ShiftService,
	attendanceService attendance.AttendanceService,
) AttendanceHandler {
	return &attendanceHandlerImpl{
		shiftService:      shiftService,
		attendanceService: attendanceService,
	}
}

// GetEffectiveShift implements AttendanceHandler.
//
// A resolution failure renders as a null shift, never as an error page:
// downstream consumers must treat "no shift" as an absent day.
func (h *attendanceHandlerImpl) GetEffectiveShift(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		response.BadRequest(w, "userId query parameter is required", nil)
		return
	}

	date, ok := parseDateParam(w, r)
	if !ok {
		return
	}

	effectiveShift, err := h.shiftService.GetEffectiveShift(r.Context(), userID, date)
	if err != nil {
		response.SuccessWithMessage(w, "No shift could be determined", map[string]interface{}{
			"effectiveShift": nil,
		})
		return
	}

	response.Success(w, map[string]interface{}{
		"effectiveShift": effectiveShift,
	})
}

type calculateStatusRequest struct {
	WorkSeconds    int64                 `json:"workDurationSeconds"`
	BreakSeconds   int64                 `json:"breakDurationSeconds"`
	EffectiveShift *shift.EffectiveShift `json:"effectiveShift"`
}

// CalculateStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) CalculateStatus(w http.ResponseWriter, r *http.Request) {
	var req calculateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.WorkSeconds < 0 || req.BreakSeconds < 0 {
		response.BadRequest(w, "Durations must not be negative", nil)
		return
	}

	status := h.attendanceService.CalculateAttendanceStatus(req.WorkSeconds, req.BreakSeconds, req.EffectiveShift)
	response.Success(w, status)
}

type calculateArrivalRequest struct {
	ArrivalTime time.Time `json:"arrivalTime"`
	ShiftStart  string    `json:"shiftStart"`
}

// CalculateArrival implements AttendanceHandler.
func (h *attendanceHandlerImpl) CalculateArrival(w http.ResponseWriter, r *http.Request) {
	var req calculateArrivalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if _, _, err := shift.ParseClock(req.ShiftStart); err != nil {
		response.HandleError(w, err)
		return
	}

	earlyLate := h.attendanceService.CalculateEarlyLateArrival(req.ArrivalTime, req.ShiftStart)
	response.Success(w, earlyLate)
}

type validatePunchInRequest struct {
	PunchTime      time.Time             `json:"punchTime"`
	EffectiveShift *shift.EffectiveShift `json:"effectiveShift"`
}

// ValidatePunchIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ValidatePunchIn(w http.ResponseWriter, r *http.Request) {
	var req validatePunchInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	validation := h.attendanceService.ValidatePunchInTime(req.PunchTime, req.EffectiveShift)
	response.Success(w, validation)
}

// GetDailySummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		response.BadRequest(w, "userId query parameter is required", nil)
		return
	}

	date, ok := parseDateParam(w, r)
	if !ok {
		return
	}

	summary, err := h.attendanceService.ComputeDailyAttendance(r.Context(), userID, date)
	if err != nil {
		if errors.Is(err, attendance.ErrNoShiftAssigned) {
			// Fail closed: no resolvable shift means an absent day.
			response.SuccessWithMessage(w, "No shift assigned for this date", attendance.DailySummary{
				UserID: userID,
				Date:   date.Format("2006-01-02"),
				Status: attendance.Status{IsAbsent: true},
			})
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

func parseDateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		return time.Now().UTC().Truncate(24 * time.Hour), true
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return time.Time{}, false
	}
	return date, true
}
