package domain

import "time"

// Token describes an issued bearer token. Tokens are not stored server-side.
type Token struct {
	ID        string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
