package domain

import (
	"strings"
	"time"
)

const maxUsername = 64

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// NewUser is the insert shape; the password is already hashed.
type NewUser struct {
	Username     string
	PasswordHash string
}

// Credentials is the register/login payload.
type Credentials struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// Validate trims the username and rejects a blank one.
func (c *Credentials) Validate() error {
	c.Username = strings.TrimSpace(c.Username)
	if c.Username == "" {
		return invalid("username", "is required")
	}
	if tooLong(c.Username, maxUsername) {
		return invalid("username", "must be at most 64 characters")
	}
	return nil
}

// PublicUser is what other family members get to see.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}
