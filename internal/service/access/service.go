package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/loomworks-hr/attendance-core-go/internal/domain/access"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/position"
	"github.com/loomworks-hr/attendance-core-go/internal/domain/user"
)

type AccessServiceImpl struct {
	user.UserRepository
	position.PositionRepository
}

func NewAccessService(
	userRepo user.UserRepository,
	positionRepo position.PositionRepository,
) access.AccessService {
	return &AccessServiceImpl{
		UserRepository:     userRepo,
		PositionRepository: positionRepo,
	}
}

// resolveScope walks the ordered strategy chain and returns the first
// applicable decision. Missing or inactive positions and unknown data scopes
// terminate at own-only.
func (s *AccessServiceImpl) resolveScope(ctx context.Context, requester user.User) (access.Decision, error) {
	if requester.HasRoleShortcut() {
		return access.Decision{Kind: access.ScopeRoleShortcut}, nil
	}

	if !requester.HasPosition() {
		return access.Decision{Kind: access.ScopeOwn}, nil
	}

	pos, err := s.PositionRepository.GetActiveByName(ctx, requester.Position)
	if err != nil {
		if errors.Is(err, position.ErrPositionNotFound) {
			return access.Decision{Kind: access.ScopeOwn}, nil
		}
		return access.Decision{}, fmt.Errorf("failed to load position %q: %w", requester.Position, err)
	}

	switch pos.HierarchicalAccess.DataScope {
	case position.ScopeAll:
		return access.Decision{Kind: access.ScopeAll}, nil
	case position.ScopeDepartment:
		return access.Decision{Kind: access.ScopeDepartment}, nil
	case position.ScopeTeam:
		return access.Decision{
			Kind:               access.ScopeTeam,
			AccessLowerLevels:  pos.HierarchicalAccess.AccessLowerLevels,
			MinimumLevelGap:    pos.HierarchicalAccess.MinimumLevelGap,
			CanAccessPositions: pos.HierarchicalAccess.CanAccessPositions,
		}, nil
	default:
		return access.Decision{Kind: access.ScopeOwn}, nil
	}
}

// AccessibleUserIDs implements access.AccessService.
func (s *AccessServiceImpl) AccessibleUserIDs(ctx context.Context, requester user.User) ([]string, error) {
	decision, err := s.resolveScope(ctx, requester)
	if err != nil {
		return nil, err
	}

	switch decision.Kind {
	case access.ScopeRoleShortcut, access.ScopeAll:
		ids, err := s.UserRepository.ListActiveIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list active users: %w", err)
		}
		return ids, nil

	case access.ScopeDepartment:
		ids, err := s.UserRepository.ListActiveIDsByDepartment(ctx, requester.Department)
		if err != nil {
			return nil, fmt.Errorf("failed to list department users: %w", err)
		}
		return ids, nil

	case access.ScopeTeam:
		return s.teamUserIDs(ctx, requester, decision)

	default:
		return []string{requester.ID}, nil
	}
}

// teamUserIDs assembles the team scope: self, then same-department users at
// strictly lower levels within the configured gap, then any explicitly
// granted positions (department-unscoped). Duplicates collapse.
func (s *AccessServiceImpl) teamUserIDs(ctx context.Context, requester user.User, decision access.Decision) ([]string, error) {
	seen := map[string]struct{}{requester.ID: {}}
	ids := []string{requester.ID}

	if decision.AccessLowerLevels {
		minLevel := requester.PositionLevel - decision.MinimumLevelGap
		lowerIDs, err := s.UserRepository.ListActiveIDsByLevelRange(ctx, requester.Department, minLevel, requester.PositionLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to list lower-level users: %w", err)
		}
		for _, id := range lowerIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	if len(decision.CanAccessPositions) > 0 {
		positionIDs, err := s.UserRepository.ListActiveIDsByPositions(ctx, decision.CanAccessPositions)
		if err != nil {
			return nil, fmt.Errorf("failed to list users by position: %w", err)
		}
		for _, id := range positionIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	return ids, nil
}

// CanAccessUserData implements access.AccessService.
func (s *AccessServiceImpl) CanAccessUserData(ctx context.Context, requester user.User, targetUserID string) (bool, error) {
	if requester.ID == targetUserID {
		return true, nil
	}

	if requester.HasRoleShortcut() {
		return true, nil
	}

	accessibleIDs, err := s.AccessibleUserIDs(ctx, requester)
	if err != nil {
		return false, err
	}

	for _, id := range accessibleIDs {
		if id == targetUserID {
			return true, nil
		}
	}
	return false, nil
}

// HasPermission implements access.AccessService.
//
// Only super-admins bypass the position check; plain admins hold the role
// shortcut for data access but not a blanket capability grant.
func (s *AccessServiceImpl) HasPermission(ctx context.Context, requester user.User, capability position.Capability) (bool, error) {
	if requester.IsSuperAdmin() {
		return true, nil
	}

	if requester.Position == "" {
		return false, nil
	}

	pos, err := s.PositionRepository.GetActiveByName(ctx, requester.Position)
	if err != nil {
		if errors.Is(err, position.ErrPositionNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load position %q: %w", requester.Position, err)
	}

	return pos.HasCapability(capability), nil
}

// DataScope implements access.AccessService.
func (s *AccessServiceImpl) DataScope(ctx context.Context, requester user.User) (position.DataScope, error) {
	decision, err := s.resolveScope(ctx, requester)
	if err != nil {
		return position.ScopeOwn, err
	}
	return decision.DataScope(), nil
}

// SubordinateUserIDs implements access.AccessService.
func (s *AccessServiceImpl) SubordinateUserIDs(ctx context.Context, requester user.User) ([]string, error) {
	if requester.HasRoleShortcut() {
		return []string{}, nil
	}

	if !requester.HasPosition() {
		return []string{}, nil
	}

	pos, err := s.PositionRepository.GetActiveByName(ctx, requester.Position)
	if err != nil {
		if errors.Is(err, position.ErrPositionNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to load position %q: %w", requester.Position, err)
	}

	if !pos.HierarchicalAccess.AccessLowerLevels {
		return []string{}, nil
	}

	seen := map[string]struct{}{requester.ID: {}}
	var ids []string

	minLevel := requester.PositionLevel - pos.HierarchicalAccess.MinimumLevelGap
	lowerIDs, err := s.UserRepository.ListActiveIDsByLevelRange(ctx, requester.Department, minLevel, requester.PositionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to list lower-level users: %w", err)
	}
	for _, id := range lowerIDs {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	if len(pos.HierarchicalAccess.CanAccessPositions) > 0 {
		positionIDs, err := s.UserRepository.ListActiveIDsByPositions(ctx, pos.HierarchicalAccess.CanAccessPositions)
		if err != nil {
			return nil, fmt.Errorf("failed to list users by position: %w", err)
		}
		for _, id := range positionIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
