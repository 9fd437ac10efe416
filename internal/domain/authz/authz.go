// Package authz implements the authorization policy for directory resources.
// It is a pure decision function over an explicit caller identity: no request
// state, no caching, evaluated fresh on every call.
package authz

import "bizdir/internal/domain/entity"

// Action identifies the operation a caller wants to perform on a resource.
type Action string

const (
	// ActionReadOwn fetches owner-only data such as the edit form payload.
	ActionReadOwn Action = "read-own"
	// ActionUpdate modifies a business listing.
	ActionUpdate Action = "update"
	// ActionDelete removes a business listing.
	ActionDelete Action = "delete"
	// ActionApproveQueue lists or bulk-approves pending listings.
	ActionApproveQueue Action = "approve-queue"
	// ActionCreateAsOwner registers a new business listing.
	ActionCreateAsOwner Action = "create-as-owner"
	// ActionManageCategories creates, updates, or deletes categories.
	ActionManageCategories Action = "manage-categories"
)

// Caller is the immutable identity of the requester, extracted once by the
// authentication middleware and passed down explicitly.
type Caller struct {
	ID   entity.ID
	Role entity.Role
}

// Anonymous returns the caller value used for unauthenticated requests.
func Anonymous() Caller {
	return Caller{}
}

// Authenticated reports whether the caller carries a real identity.
func (c Caller) Authenticated() bool {
	return !c.ID.IsZero() && c.Role.IsValid()
}

// DenyReason classifies why an action was refused.
type DenyReason string

const (
	// ReasonUnauthenticated means no caller identity was presented.
	ReasonUnauthenticated DenyReason = "unauthenticated"
	// ReasonForbidden means the identity is known but not permitted.
	ReasonForbidden DenyReason = "forbidden"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Authorize decides whether the caller may perform action on a resource owned
// by ownerID. Rules are evaluated in precedence order: authentication first,
// then per-action ownership/role checks with an exhaustive role switch so an
// unknown role can never fall through to an allow.
func Authorize(caller Caller, ownerID entity.ID, action Action) Decision {
	if !caller.Authenticated() {
		return deny(ReasonUnauthenticated)
	}

	switch action {
	case ActionUpdate, ActionDelete:
		// Owner of the resource or an admin.
		if caller.ID == ownerID {
			return allow()
		}
		if caller.Role == entity.RoleAdmin {
			return allow()
		}

		return deny(ReasonForbidden)

	case ActionReadOwn:
		// Stricter than update/delete: no admin override on the edit form.
		if caller.ID == ownerID {
			return allow()
		}

		return deny(ReasonForbidden)

	case ActionCreateAsOwner:
		if caller.Role == entity.RoleOwner {
			return allow()
		}

		return deny(ReasonForbidden)

	case ActionApproveQueue, ActionManageCategories:
		if caller.Role == entity.RoleAdmin {
			return allow()
		}

		return deny(ReasonForbidden)

	default:
		return deny(ReasonForbidden)
	}
}
