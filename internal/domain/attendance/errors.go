package attendance

import "errors"

var ErrNoShiftAssigned = errors.New("no shift assigned for this date")
