// Package approval implements the moderation workflow for business listings:
// a two-state machine (pending, approved) whose transition on update depends
// on who is editing and which fields changed. The computation is pure so it
// can be exercised without any HTTP or storage context.
package approval

import "bizdir/internal/domain/entity"

// Change is the set of proposed modifications to a listing. Nil fields were
// not supplied and keep their stored values; an update is a partial merge,
// never a full replace.
type Change struct {
	Name        *string
	Description *string
	CategoryID  *entity.ID
	Address     *string
	City        *string
	State       *string
	Pincode     *string
	Phone       *string
	Email       *string
	Website     *string
	Image       *string

	// Status is only honored when the editor is an admin. Owners cannot
	// steer their own moderation state; the machine overrides whatever
	// they send.
	Status *entity.Status
}

// IsCritical reports whether the change touches a field that requires
// re-approval: name, description, or category. Category ids are compared by
// value (entity.ID normalizes numeric and string JSON forms), so "5" and 5
// never produce a false positive.
func (c Change) IsCritical(current *entity.Business) bool {
	if c.Name != nil && *c.Name != current.Name {
		return true
	}
	if c.Description != nil && *c.Description != current.Description {
		return true
	}
	if c.CategoryID != nil && *c.CategoryID != current.CategoryID {
		return true
	}

	return false
}

// Resolve merges the proposed change over the current record and computes the
// resulting moderation status for the given editor role. It never mutates
// current. Identity, ownership, creation time, and the derived rating are
// immutable and always carried over from the stored record.
//
// The caller is responsible for establishing that the listing exists and that
// the editor is authorized before invoking Resolve.
func Resolve(current *entity.Business, change Change, editor entity.Role) entity.Business {
	merged := *current

	if change.Name != nil {
		merged.Name = *change.Name
	}
	if change.Description != nil {
		merged.Description = *change.Description
	}
	if change.CategoryID != nil {
		merged.CategoryID = *change.CategoryID
	}
	if change.Address != nil {
		merged.Address = *change.Address
	}
	if change.City != nil {
		merged.City = *change.City
	}
	if change.State != nil {
		merged.State = *change.State
	}
	if change.Pincode != nil {
		merged.Pincode = *change.Pincode
	}
	if change.Phone != nil {
		merged.Phone = *change.Phone
	}
	if change.Email != nil {
		merged.Email = *change.Email
	}
	if change.Website != nil {
		merged.Website = *change.Website
	}
	if change.Image != nil {
		merged.Image = *change.Image
	}

	merged.Status = resolveStatus(current, change, editor)

	return merged
}

// resolveStatus encodes the transition rule:
//   - owner editing a critical field sends the listing back to pending,
//     whatever status value the owner supplied;
//   - owner editing minor fields keeps the stored status;
//   - admin-supplied status is trusted as-is (that is how pending listings
//     get approved), otherwise the stored status stays.
func resolveStatus(current *entity.Business, change Change, editor entity.Role) entity.Status {
	switch editor {
	case entity.RoleOwner:
		if change.IsCritical(current) {
			return entity.StatusPending
		}

		return current.Status

	case entity.RoleAdmin:
		if change.Status != nil {
			return *change.Status
		}

		return current.Status

	case entity.RoleViewer:
		// Viewers never pass authorization for updates; if one ever reaches
		// here the stored status must not move.
		return current.Status

	default:
		return current.Status
	}
}
