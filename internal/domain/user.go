package domain

import "time"

// User represents a registered account. Tokens holds the still-valid session
// tokens issued to this user, oldest first; registration and login append to
// it, logout removes a single entry.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Age          int
	Tokens       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasToken reports whether token is still part of the user's session set.
func (u *User) HasToken(token string) bool {
	for _, t := range u.Tokens {
		if t == token {
			return true
		}
	}
	return false
}
