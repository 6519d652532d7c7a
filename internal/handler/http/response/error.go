package response

import (
	"errors"
	"net/http"

	"github.com/loomworks-hr/attendance-core-go/internal/domain/position"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/shift"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/user"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, shift.ErrInvalidTimeFormat):
		BadRequest(w, "Time must be in HH:MM format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
