// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account that owns tasks.
// The password is stored only as an argon2id hash; the raw value never
// leaves the registration/login request path.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
