package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/vmindtech/endor/internal/dto/resource"
)

func newTestAuthService(f *fakeEndor, now time.Time) *authService {
	a := NewAuthService(newTestLogger(), f.config(), http.DefaultClient).(*authService)
	a.now = func() time.Time { return now }

	return a
}

func TestGetTokenReusesCachedToken(t *testing.T) {
	f := newFakeEndor(t)
	now := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)
	a := newTestAuthService(f, now)
	a.token = &resource.CachedToken{Token: "T", ExpiresAt: now.Add(time.Hour)}

	token, err := a.GetToken(context.Background())
	gt.NoError(t, err).Required()
	gt.Equal(t, token, "T")
	gt.Equal(t, f.authCalls.Load(), int32(0))
}

func TestGetTokenExchangesWhenEmpty(t *testing.T) {
	f := newFakeEndor(t)
	f.expiresAt = time.Date(2025, 1, 1, 13, 0, 0, 0, time.UTC)
	a := newTestAuthService(f, time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))

	token, err := a.GetToken(context.Background())
	gt.NoError(t, err).Required()
	gt.Equal(t, token, testToken)
	gt.Equal(t, f.authCalls.Load(), int32(1))

	// second call is served from the slot
	token, err = a.GetToken(context.Background())
	gt.NoError(t, err).Required()
	gt.Equal(t, token, testToken)
	gt.Equal(t, f.authCalls.Load(), int32(1))
	gt.True(t, a.token.ExpiresAt.Equal(f.expiresAt))
}

func TestGetTokenRefreshesExpiredToken(t *testing.T) {
	f := newFakeEndor(t)
	f.token = "T2"
	f.expiresAt = time.Date(2025, 1, 1, 13, 0, 0, 0, time.UTC)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	a := newTestAuthService(f, now)
	a.token = &resource.CachedToken{Token: "T1", ExpiresAt: now.Add(-time.Minute)}

	token, err := a.GetToken(context.Background())
	gt.NoError(t, err).Required()
	gt.Equal(t, token, "T2")
	gt.Equal(t, f.authCalls.Load(), int32(1))
	gt.Equal(t, a.token.Token, "T2")
}

func TestGetTokenTreatsExpiryInstantAsExpired(t *testing.T) {
	f := newFakeEndor(t)
	f.token = "T2"
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	a := newTestAuthService(f, now)
	a.token = &resource.CachedToken{Token: "T1", ExpiresAt: now}

	token, err := a.GetToken(context.Background())
	gt.NoError(t, err).Required()
	gt.Equal(t, token, "T2")
	gt.Equal(t, f.authCalls.Load(), int32(1))
}

func TestGetTokenAuthFailureKeepsCache(t *testing.T) {
	f := newFakeEndor(t)
	f.authStatus = http.StatusUnauthorized
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	a := newTestAuthService(f, now)
	stale := &resource.CachedToken{Token: "T1", ExpiresAt: now.Add(-time.Minute)}
	a.token = stale

	_, err := a.GetToken(context.Background())
	gt.Error(t, err)

	var authErr *AuthError
	gt.True(t, errors.As(err, &authErr))
	gt.Equal(t, authErr.StatusCode, http.StatusUnauthorized)
	gt.True(t, a.token == stale)

	// the next call retries the exchange
	f.mu.Lock()
	f.authStatus = http.StatusOK
	f.mu.Unlock()

	token, err := a.GetToken(context.Background())
	gt.NoError(t, err).Required()
	gt.Equal(t, token, testToken)
	gt.Equal(t, f.authCalls.Load(), int32(2))
}

func TestGetTokenRejectsWrongCredentials(t *testing.T) {
	f := newFakeEndor(t)
	cfg := f.config()
	cfg.APISecret = "wrong"
	a := NewAuthService(newTestLogger(), cfg, http.DefaultClient)

	_, err := a.GetToken(context.Background())

	var authErr *AuthError
	gt.True(t, errors.As(err, &authErr))
	gt.S(t, err.Error()).Contains("authentication error")
}

func TestInvalidateForcesExchange(t *testing.T) {
	f := newFakeEndor(t)
	a := NewAuthService(newTestLogger(), f.config(), http.DefaultClient)

	_, err := a.GetToken(context.Background())
	gt.NoError(t, err).Required()

	a.Invalidate()

	_, err = a.GetToken(context.Background())
	gt.NoError(t, err).Required()
	gt.Equal(t, f.authCalls.Load(), int32(2))
}

func TestCachedTokenIsValid(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	var missing *resource.CachedToken
	gt.False(t, missing.IsValid(now))
	gt.False(t, (&resource.CachedToken{ExpiresAt: now.Add(time.Hour)}).IsValid(now))
	gt.False(t, (&resource.CachedToken{Token: "T", ExpiresAt: now}).IsValid(now))
	gt.True(t, (&resource.CachedToken{Token: "T", ExpiresAt: now.Add(time.Second)}).IsValid(now))
}
