// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wso2/ai-agent-management-platform/mlclient/clients/requests"
	"github.com/wso2/ai-agent-management-platform/mlclient/config"
)

var errNoExpiry = errors.New("token response has no expires_in and the token carries no exp claim")

type tokenProvider struct {
	config     config.IDPConfig
	httpClient requests.HttpClient
	now        func() time.Time

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
	Scope       string `json:"scope,omitempty"`
}

// expiryBuffer is the time before actual expiry when we consider the token expired
const expiryBuffer = 30 * time.Second

// NewTokenProvider creates a provider that fetches OAuth2 client credentials
// tokens from the IDP and caches them until shortly before they expire.
func NewTokenProvider(cfg config.IDPConfig) AuthProvider {
	return &tokenProvider{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		now: time.Now,
	}
}

func (p *tokenProvider) Authorize(ctx context.Context, req *http.Request) error {
	token, err := p.GetToken(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

// GetToken returns a valid access token, fetching a new one if the cached token is expired
func (p *tokenProvider) GetToken(ctx context.Context) (string, error) {
	p.mu.RLock()
	if p.isTokenValid() {
		token := p.accessToken
		p.mu.RUnlock()
		return token, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock (another goroutine might have refreshed it)
	if p.isTokenValid() {
		return p.accessToken, nil
	}
	slog.Debug("auth: access token expired or missing, fetching new token")

	token, expiresAt, err := p.fetchToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch token: %w", err)
	}

	p.accessToken = token
	p.expiresAt = expiresAt

	slog.Info("auth: fetched new access token",
		"expires_at", p.expiresAt.Format(time.RFC3339))

	return p.accessToken, nil
}

func (p *tokenProvider) InvalidateToken() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.accessToken = ""
	p.expiresAt = time.Time{}
	return true
}

// isTokenValid must be called with at least a read lock held
func (p *tokenProvider) isTokenValid() bool {
	if p.accessToken == "" {
		return false
	}
	return p.now().Add(expiryBuffer).Before(p.expiresAt)
}

func (p *tokenProvider) fetchToken(ctx context.Context) (string, time.Time, error) {
	req := &requests.HttpRequest{
		Name:   "auth.fetchToken",
		URL:    p.config.TokenURL,
		Method: http.MethodPost,
	}
	req.SetFormData(map[string]string{
		"grant_type":    "client_credentials",
		"client_id":     p.config.ClientID,
		"client_secret": p.config.ClientSecret,
	})

	var tokenResp tokenResponse
	if err := requests.SendRequest(ctx, p.httpClient, req).ScanResponse(&tokenResp, http.StatusOK); err != nil {
		return "", time.Time{}, fmt.Errorf("auth.fetchToken: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return "", time.Time{}, fmt.Errorf("empty access token in response")
	}
	if tokenResp.ExpiresIn > 0 {
		return tokenResp.AccessToken, p.now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second), nil
	}
	if tokenResp.ExpiresIn < 0 {
		return "", time.Time{}, fmt.Errorf("invalid expires_in value: %d (must be positive)", tokenResp.ExpiresIn)
	}

	expiresAt, err := expiryFromJWT(tokenResp.AccessToken)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenResp.AccessToken, expiresAt, nil
}

// expiryFromJWT reads the exp claim without verifying the signature;
// the token is only forwarded to the cluster, which does the verification.
func expiryFromJWT(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", errNoExpiry, err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errNoExpiry
	}
	return exp.Time, nil
}
