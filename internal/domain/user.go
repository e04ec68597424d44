package domain

import "time"

// Identity is a registered account. It is never mutated after registration.
type Identity struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
