package resource

import "time"

type APIKeyAuthResponse struct {
	Token          string    `json:"token"`
	ExpirationTime time.Time `json:"expirationTime"`
}

type CachedToken struct {
	Token     string
	ExpiresAt time.Time
}

// IsValid reports whether the token can still be used at now.
func (t *CachedToken) IsValid(now time.Time) bool {
	if t == nil || t.Token == "" {
		return false
	}

	return now.Before(t.ExpiresAt)
}
