// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a user in the system.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// DateFormat represents the user's preferred date format.
type DateFormat string

const (
	DateFormatDMY DateFormat = "DD/MM/YYYY"
	DateFormatMDY DateFormat = "MM/DD/YYYY"
	DateFormatYMD DateFormat = "YYYY-MM-DD"
)

// ThemePreference represents the user's preferred UI theme.
type ThemePreference string

const (
	ThemeLight  ThemePreference = "light"
	ThemeDark   ThemePreference = "dark"
	ThemeSystem ThemePreference = "system"
)

// User represents a user in the Expense Tracker system.
// New registrations start unapproved and cannot log in until an
// administrator approves them.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	Approved     bool
	ApprovedAt   *time.Time
	Currency     string
	DateFormat   DateFormat
	Language     string
	Theme        ThemePreference
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new unapproved User with default preferences.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         UserRoleUser,
		Approved:     false,
		Currency:     DefaultCurrency,
		DateFormat:   DateFormatYMD,
		Language:     "en",
		Theme:        ThemeSystem,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// Approve marks the user as approved at the given time. Approving an
// already-approved user is a no-op so the operation stays idempotent.
func (u *User) Approve(at time.Time) {
	if u.Approved {
		return
	}
	u.Approved = true
	u.ApprovedAt = &at
	u.UpdatedAt = at
}

// PendingUser is the projection of an unapproved registration exposed to
// administrators.
type PendingUser struct {
	UserID    uuid.UUID
	Email     string
	CreatedAt time.Time
}
