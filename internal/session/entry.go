package session

import "time"

// Entry is the persisted form of a session.
type Entry struct {
	// Token is the bearer token sent in the Authorization header.
	Token string `json:"token"`

	// CreatedAt is when the token was stored.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is when the token stops being offered to the backend.
	ExpiresAt time.Time `json:"expires_at"`
}

// NewEntry creates an entry that expires ttl from now.
func NewEntry(token string, ttl time.Duration) *Entry {
	now := time.Now()
	return &Entry{
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired reports whether the entry is past its expiry.
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.ExpiresAt)
}

// TimeUntilExpiration returns the remaining lifetime, or 0 if already expired.
func (e *Entry) TimeUntilExpiration() time.Duration {
	remaining := time.Until(e.ExpiresAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}
