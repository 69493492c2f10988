package models

import "time"

// RefreshToken is an opaque token exchanged for a new access token
type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// Expired reports whether the token is past its expiry
func (t *RefreshToken) Expired() bool {
	return time.Now().After(t.ExpiresAt)
}
