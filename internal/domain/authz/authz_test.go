package authz

import (
	"testing"

	"bizdir/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize_UnauthenticatedDeniedForEveryAction(t *testing.T) {
	actions := []Action{
		ActionReadOwn,
		ActionUpdate,
		ActionDelete,
		ActionApproveQueue,
		ActionCreateAsOwner,
		ActionManageCategories,
	}

	for _, action := range actions {
		decision := Authorize(Anonymous(), entity.ID(1), action)

		assert.False(t, decision.Allowed, "action %s", action)
		assert.Equal(t, ReasonUnauthenticated, decision.Reason, "action %s", action)
	}
}

func TestAuthorize_UpdateDelete_NonAdminNonOwnerForbidden(t *testing.T) {
	ownerID := entity.ID(10)

	for _, role := range []entity.Role{entity.RoleViewer, entity.RoleOwner} {
		for _, action := range []Action{ActionUpdate, ActionDelete} {
			caller := Caller{ID: entity.ID(99), Role: role}
			decision := Authorize(caller, ownerID, action)

			assert.False(t, decision.Allowed, "role %s action %s", role, action)
			assert.Equal(t, ReasonForbidden, decision.Reason)
		}
	}
}

func TestAuthorize_UpdateDelete_AdminAllowedRegardlessOfOwnership(t *testing.T) {
	admin := Caller{ID: entity.ID(3), Role: entity.RoleAdmin}

	for _, action := range []Action{ActionUpdate, ActionDelete} {
		decision := Authorize(admin, entity.ID(77), action)

		assert.True(t, decision.Allowed, "action %s", action)
	}
}

func TestAuthorize_UpdateDelete_OwnerOfResourceAllowed(t *testing.T) {
	caller := Caller{ID: entity.ID(10), Role: entity.RoleOwner}

	decision := Authorize(caller, entity.ID(10), ActionUpdate)

	assert.True(t, decision.Allowed)
}

func TestAuthorize_ReadOwn_NoAdminOverride(t *testing.T) {
	admin := Caller{ID: entity.ID(3), Role: entity.RoleAdmin}

	decision := Authorize(admin, entity.ID(77), ActionReadOwn)

	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonForbidden, decision.Reason)

	owner := Caller{ID: entity.ID(77), Role: entity.RoleOwner}
	assert.True(t, Authorize(owner, entity.ID(77), ActionReadOwn).Allowed)
}

func TestAuthorize_CreateAsOwner_ViewerForbidden(t *testing.T) {
	viewer := Caller{ID: entity.ID(5), Role: entity.RoleViewer}

	decision := Authorize(viewer, entity.ID(0), ActionCreateAsOwner)

	assert.False(t, decision.Allowed)
	assert.Equal(t, ReasonForbidden, decision.Reason)
}

func TestAuthorize_CreateAsOwner_OnlyOwnerRole(t *testing.T) {
	assert.True(t, Authorize(Caller{ID: 5, Role: entity.RoleOwner}, 0, ActionCreateAsOwner).Allowed)
	assert.False(t, Authorize(Caller{ID: 5, Role: entity.RoleAdmin}, 0, ActionCreateAsOwner).Allowed)
}

func TestAuthorize_ApproveQueueAndCategories_AdminOnly(t *testing.T) {
	for _, action := range []Action{ActionApproveQueue, ActionManageCategories} {
		assert.True(t, Authorize(Caller{ID: 1, Role: entity.RoleAdmin}, 0, action).Allowed, "action %s", action)
		assert.False(t, Authorize(Caller{ID: 1, Role: entity.RoleOwner}, 0, action).Allowed, "action %s", action)
		assert.False(t, Authorize(Caller{ID: 1, Role: entity.RoleViewer}, 0, action).Allowed, "action %s", action)
	}
}

func TestAuthorize_InvalidRoleNeverAllowed(t *testing.T) {
	// A caller with an out-of-enumeration role fails the authentication
	// check even when it owns the resource.
	caller := Caller{ID: entity.ID(10), Role: entity.Role("superuser")}

	decision := Authorize(caller, entity.ID(10), ActionUpdate)

	assert.False(t, decision.Allowed)
}
