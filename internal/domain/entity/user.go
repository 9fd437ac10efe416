package entity

import "time"

// User is an account in the system. Role is fixed at registration; there is
// no profile-per-role split because a caller acts under exactly one role.
type User struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// PasswordHash is the stored bcrypt hash. It never leaves the service.
	PasswordHash string `json:"-"`
}
