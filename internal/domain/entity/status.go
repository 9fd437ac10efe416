package entity

// Status represents the moderation state of a business listing.
// The approval workflow only ever produces pending or approved; a rejected
// listing is deleted outright rather than parked in a third state.
type Status string

const (
	// StatusPending marks a listing awaiting admin approval.
	StatusPending Status = "pending"
	// StatusApproved marks a listing visible to the public.
	StatusApproved Status = "approved"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved:
		return true
	default:
		return false
	}
}
