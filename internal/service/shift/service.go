package shift

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/loomworks-hr/attendance-core-go/internal/domain/shift"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/user"
)

type ShiftServiceImpl struct {
	user.UserRepository
	shift.FlexibleShiftRequestRepository
}

func NewShiftService(
	userRepo user.UserRepository,
	flexRequestRepo shift.FlexibleShiftRequestRepository,
) shift.ShiftService {
	return &ShiftServiceImpl{
		UserRepository:                 userRepo,
		FlexibleShiftRequestRepository: flexRequestRepo,
	}
}

// GetEffectiveShift implements shift.ShiftService.
//
// Precedence, first match wins:
//  1. per-date override on the user
//  2. flexible-permanent shift type
//  3. approved one-day flexible request for the date
//  4. the user's standard shift (named table, then the raw shift field)
//  5. company default 09:00-18:00
func (s *ShiftServiceImpl) GetEffectiveShift(ctx context.Context, userID string, date time.Time) (*shift.EffectiveShift, error) {
	dateKey := date.Format("2006-01-02")

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user for shift resolution: %w", err)
	}

	if override, ok := u.ShiftOverrides[dateKey]; ok {
		return overrideShift(override, u.ShiftType), nil
	}

	if u.ShiftType == user.ShiftTypeFlexiblePermanent {
		return &shift.EffectiveShift{
			Start:               "00:00",
			End:                 "23:59",
			DurationHours:       9,
			IsFlexible:          true,
			IsFlexiblePermanent: true,
			Source:              shift.SourceFlexiblePermanent,
			Type:                "flexiblePermanent",
			ShiftName:           "FlexiblePermanent Shift",
		}, nil
	}

	flexRequest, err := s.FlexibleShiftRequestRepository.GetApprovedForDate(ctx, userID, date)
	if err != nil && !errors.Is(err, shift.ErrFlexibleRequestNotFound) {
		return nil, fmt.Errorf("failed to look up flexible shift request: %w", err)
	}
	if err == nil {
		resolved, err := flexibleRequestShift(flexRequest)
		if err != nil {
			return nil, err
		}
		return resolved, nil
	}

	if u.ShiftType == user.ShiftTypeStandard {
		if standard, ok := shift.StandardShifts[u.StandardShiftType]; ok {
			return &shift.EffectiveShift{
				Start:         standard.Start,
				End:           standard.End,
				DurationHours: standard.DurationHours,
				Source:        shift.SourceStandard,
				Type:          "standard",
				ShiftName:     standard.Name,
			}, nil
		}

		if u.Shift != nil && u.Shift.Start != "" && u.Shift.End != "" {
			durationHours := u.Shift.DurationHours
			if durationHours == 0 {
				durationHours = 9
			}
			name := u.Shift.Name
			if name == "" {
				name = "Standard Shift"
			}
			return &shift.EffectiveShift{
				Start:         u.Shift.Start,
				End:           u.Shift.End,
				DurationHours: durationHours,
				Source:        shift.SourceStandardFallback,
				Type:          "standard",
				ShiftName:     name,
			}, nil
		}
	}

	return &shift.EffectiveShift{
		Start:         "09:00",
		End:           "18:00",
		DurationHours: 9,
		Source:        shift.SourceDefault,
		Type:          "standard",
		ShiftName:     "Default Shift",
	}, nil
}

// overrideShift builds the effective shift from a per-date override. A
// flexible override on a standard-shift user is a one-day flexible day and
// switches the attendance threshold regime.
func overrideShift(override user.ShiftOverride, baseType user.ShiftType) *shift.EffectiveShift {
	start := override.Start
	if start == "" {
		start = "00:00"
	}
	end := override.End
	if end == "" {
		end = "23:59"
	}
	durationHours := override.DurationHours
	if durationHours == 0 {
		durationHours = 9
	}
	name := override.Name
	if name == "" {
		name = "Override Shift"
	}

	isFlexible := override.Type == "flexible"

	return &shift.EffectiveShift{
		Start:                    start,
		End:                      end,
		DurationHours:            durationHours,
		IsFlexible:               isFlexible,
		IsOneDayFlexibleOverride: isFlexible && baseType == user.ShiftTypeStandard,
		Source:                   shift.SourceOverride,
		Type:                     override.Type,
		ShiftName:                name,
	}
}

// flexibleRequestShift derives the shift window from an approved one-day
// request: end = start + duration, wrapping past midnight modulo 24h.
func flexibleRequestShift(req shift.FlexibleShiftRequest) (*shift.EffectiveShift, error) {
	durationHours := req.DurationHours
	if durationHours == 0 {
		durationHours = 9
	}

	startH, startM, err := shift.ParseClock(req.RequestedStartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid flexible request start time: %w", err)
	}

	endH := startH + int(math.Floor(durationHours))
	endM := startM + int(math.Round(math.Mod(durationHours, 1)*60))
	if endM >= 60 {
		endH += endM / 60
		endM = endM % 60
	}
	endH = endH % 24

	return &shift.EffectiveShift{
		Start:                    req.RequestedStartTime,
		End:                      shift.FormatClock(endH, endM),
		DurationHours:            durationHours,
		IsFlexible:               true,
		IsOneDayFlexibleOverride: true,
		Source:                   shift.SourceFlexibleRequest,
		Type:                     "flexible",
		ShiftName:                "Flexible Request",
	}, nil
}
