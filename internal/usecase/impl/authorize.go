// Package impl contains the implementation of the application's business logic.
package impl

import (
	"bizdir/internal/domain/authz"
	"bizdir/internal/domain/entity"
	domainerrors "bizdir/internal/domain/errors"
)

// authorize runs the policy check and translates a denial into the matching
// application error so every service maps decisions the same way.
func authorize(caller authz.Caller, ownerID entity.ID, action authz.Action) error {
	decision := authz.Authorize(caller, ownerID, action)
	if decision.Allowed {
		return nil
	}

	if decision.Reason == authz.ReasonUnauthenticated {
		return domainerrors.ErrUnauthenticated.WrapMessage("authentication required for " + string(action))
	}

	return domainerrors.ErrForbidden.WrapMessage("caller not permitted to " + string(action))
}
