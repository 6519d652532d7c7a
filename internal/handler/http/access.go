package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/access"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/position"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/user"
	"github.com/loomworks-hr/attendance-core-go/internal/handler/http/response"
)

type AccessHandler interface {
	GetAccessibleUsers(w http.ResponseWriter, r *http.Request)
	CanAccessUser(w http.ResponseWriter, r *http.Request)
	CheckPermission(w http.ResponseWriter, r *http.Request)
	GetDataScope(w http.ResponseWriter, r *http.Request)
	GetSubordinates(w http.ResponseWriter, r *http.Request)
}

type accessHandlerImpl struct {
	accessService access.AccessService
	userRepo      user.UserRepository
}

func NewAccessHandler(accessService access.AccessService, userRepo user.UserRepository) AccessHandler {
	return &accessHandlerImpl{
		accessService: accessService,
		userRepo:      userRepo,
	}
}

// requester loads the authenticated user from the token claims.
func (h *accessHandlerImpl) requester(ctx context.Context) (user.User, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.User{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	u, err := h.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	if !u.IsActive() {
		return user.User{}, user.ErrUserInactive
	}
	return u, nil
}

// GetAccessibleUsers implements AccessHandler.
//
// Errors fail closed to the requester's own record; access never widens on
// failure.
func (h *accessHandlerImpl) GetAccessibleUsers(w http.ResponseWriter, r *http.Request) {
	requester, err := h.requester(r.Context())
	if err != nil {
		response.Unauthorized(w, "Unable to identify requester")
		return
	}

	ids, err := h.accessService.AccessibleUserIDs(r.Context(), requester)
	if err != nil {
		ids = []string{requester.ID}
	}

	response.Success(w, map[string]interface{}{
		"userIds": ids,
	})
}

// CanAccessUser implements AccessHandler. Errors fail closed to denial.
func (h *accessHandlerImpl) CanAccessUser(w http.ResponseWriter, r *http.Request) {
	requester, err := h.requester(r.Context())
	if err != nil {
		response.Unauthorized(w, "Unable to identify requester")
		return
	}

	targetUserID := chi.URLParam(r, "userID")

	allowed, err := h.accessService.CanAccessUserData(r.Context(), requester, targetUserID)
	if err != nil {
		allowed = false
	}

	response.Success(w, map[string]interface{}{
		"canAccess": allowed,
	})
}

// CheckPermission implements AccessHandler. Errors fail closed to false.
func (h *accessHandlerImpl) CheckPermission(w http.ResponseWriter, r *http.Request) {
	requester, err := h.requester(r.Context())
	if err != nil {
		response.Unauthorized(w, "Unable to identify requester")
		return
	}

	capability := chi.URLParam(r, "capability")
	if capability == "" {
		response.BadRequest(w, "capability is required", nil)
		return
	}

	granted, err := h.accessService.HasPermission(r.Context(), requester, position.Capability(capability))
	if err != nil {
		granted = false
	}

	response.Success(w, map[string]interface{}{
		"hasPermission": granted,
	})
}

// GetDataScope implements AccessHandler. Errors fail closed to own-only.
func (h *accessHandlerImpl) GetDataScope(w http.ResponseWriter, r *http.Request) {
	requester, err := h.requester(r.Context())
	if err != nil {
		response.Unauthorized(w, "Unable to identify requester")
		return
	}

	scope, err := h.accessService.DataScope(r.Context(), requester)
	if err != nil {
		scope = position.ScopeOwn
	}

	response.Success(w, map[string]interface{}{
		"dataScope": scope,
	})
}

// GetSubordinates implements AccessHandler. Errors fail closed to empty.
func (h *accessHandlerImpl) GetSubordinates(w http.ResponseWriter, r *http.Request) {
	requester, err := h.requester(r.Context())
	if err != nil {
		response.Unauthorized(w, "Unable to identify requester")
		return
	}

	ids, err := h.accessService.SubordinateUserIDs(r.Context(), requester)
	if err != nil {
		ids = []string{}
	}

	response.Success(w, map[string]interface{}{
		"userIds": ids,
	})
}
