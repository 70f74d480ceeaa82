// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the studio: a registered customer, an administrator,
// or a guest provisioned while checking out.
type User struct {
	ID                  uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email               string     // Lower-cased email; unique across users.
	Name                string     // The user's display name.
	PasswordHash        string     // Empty for Google sign-in and guest accounts.
	Role                Role       // user, admin or guest.
	ResetToken          string     // Pending password-reset token, empty when none.
	ResetTokenExpiresAt *time.Time // Expiry of ResetToken.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// FirstName returns the first word of the user's name, used in email greetings.
func (u *User) FirstName() string {
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}

	return u.Name
}

// HasPassword reports whether the account can sign in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// ResetTokenValid reports whether token matches the pending reset token and is unexpired.
func (u *User) ResetTokenValid(token string, now time.Time) bool {
	if u.ResetToken == "" || token != u.ResetToken || u.ResetTokenExpiresAt == nil {
		return false
	}

	return now.Before(*u.ResetTokenExpiresAt)
}
