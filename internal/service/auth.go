package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vmindtech/endor/config"
	"github.com/vmindtech/endor/internal/dto/request"
	"github.com/vmindtech/endor/internal/dto/resource"
	"github.com/vmindtech/endor/pkg/constants"
)

type IAuthService interface {
	GetToken(ctx context.Context) (string, error)
	Invalidate()
}

// authService keeps a single cached bearer token. Concurrent misses may each
// run an exchange; the last one to finish wins the slot.
type authService struct {
	logger     *logrus.Logger
	config     config.EndorConfig
	httpClient *http.Client
	now        func() time.Time

	mu    sync.RWMutex
	token *resource.CachedToken
}

func NewAuthService(logger *logrus.Logger, cfg config.EndorConfig, client *http.Client) IAuthService {
	return &authService{
		logger:     logger,
		config:     cfg,
		httpClient: client,
		now:        time.Now,
	}
}

func (a *authService) GetToken(ctx context.Context) (string, error) {
	a.mu.RLock()
	cached := a.token
	a.mu.RUnlock()

	if cached.IsValid(a.now()) {
		return cached.Token, nil
	}

	token, err := a.exchange(ctx)
	if err != nil {
		return "", err
	}

	a.mu.Lock()
	a.token = token
	a.mu.Unlock()

	a.logger.WithField("expiresAt", token.ExpiresAt).Debug("endor token refreshed")

	return token.Token, nil
}

func (a *authService) Invalidate() {
	a.mu.Lock()
	a.token = nil
	a.mu.Unlock()
}

func (a *authService) exchange(ctx context.Context) (*resource.CachedToken, error) {
	data, err := json.Marshal(&request.APIKeyAuthRequest{
		Key:    a.config.APIKey,
		Secret: a.config.APISecret,
	})
	if err != nil {
		a.logger.Errorf("failed to marshal request, error: %v", err)
		return nil, err
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", a.config.APIURL, constants.APIKeyAuthPath), bytes.NewBuffer(data))
	if err != nil {
		a.logger.Errorf("failed to create request, error: %v", err)
		return nil, err
	}
	r.Header.Add("Content-Type", "application/json")

	resp, err := a.httpClient.Do(r)
	if err != nil {
		a.logger.Errorf("failed to send request, error: %v", err)
		return nil, fmt.Errorf("failed to %s: %w", constants.OpAuthenticate, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		a.logger.Errorf("failed to authenticate, status code: %v, error msg: %v", resp.StatusCode, resp.Status)
		return nil, &AuthError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var respDecoder resource.APIKeyAuthResponse

	err = json.NewDecoder(resp.Body).Decode(&respDecoder)
	if err != nil {
		a.logger.Errorf("failed to decode response, error: %v", err)
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}

	return &resource.CachedToken{
		Token:     respDecoder.Token,
		ExpiresAt: respDecoder.ExpirationTime,
	}, nil
}

func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}
