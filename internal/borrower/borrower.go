package borrower

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a borrower is not found.
var ErrNotFound = errors.New("borrower not found")

// ErrInvalidBorrower is returned when a registration is missing name or email.
var ErrInvalidBorrower = errors.New("name and email are required")

// ErrUnknownRole is returned in strict mode when a registration carries a
// role outside the known set.
var ErrUnknownRole = errors.New("unrecognized borrower role")

// Role classifies a borrower and determines their loan quota.
type Role string

const (
	RoleStudent Role = "Student"
	RoleTeacher Role = "Teacher"
	RoleOther   Role = "Other"
)

// Quota returns the maximum number of simultaneous open loans the role
// permits: Student 1, Teacher 2, anything else 0.
func (r Role) Quota() int {
	switch r {
	case RoleStudent:
		return 1
	case RoleTeacher:
		return 2
	default:
		return 0
	}
}

// Recognized reports whether the role is one of the known enumerants.
func (r Role) Recognized() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleOther:
		return true
	}
	return false
}

// Borrower represents a registered borrower. Borrowers are immutable after
// registration, so the persisted quota can never drift from the role.
type Borrower struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Quota     int       `json:"quota"`
	CreatedAt time.Time `json:"created_at"`
}
