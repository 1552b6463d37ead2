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
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ai-agent-management-platform/mlclient/config"
)

func newTestTokenProvider(tokenURL string) *tokenProvider {
	return NewTokenProvider(config.IDPConfig{
		TokenURL:     tokenURL,
		ClientID:     "client",
		ClientSecret: "secret",
	}).(*tokenProvider)
}

func tokenServer(t *testing.T, calls *atomic.Int32, body func(n int32) string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret", r.PostForm.Get("client_secret"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body(n)))
	}))
}

func TestTokenProvider_CachesToken(t *testing.T) {
	var calls atomic.Int32
	server := tokenServer(t, &calls, func(n int32) string {
		return fmt.Sprintf(`{"access_token":"token-%d","token_type":"Bearer","expires_in":3600}`, n)
	})
	defer server.Close()

	p := newTestTokenProvider(server.URL)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := p.GetToken(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "token-1", token)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())

	req := httptest.NewRequest(http.MethodGet, "http://es/", nil)
	require.NoError(t, p.Authorize(context.Background(), req))
	assert.Equal(t, "Bearer token-1", req.Header.Get("Authorization"))
}

func TestTokenProvider_RefreshesAfterInvalidateAndExpiry(t *testing.T) {
	var calls atomic.Int32
	server := tokenServer(t, &calls, func(n int32) string {
		return fmt.Sprintf(`{"access_token":"token-%d","expires_in":60}`, n)
	})
	defer server.Close()

	p := newTestTokenProvider(server.URL)
	now := time.Now()
	p.now = func() time.Time { return now }

	token, err := p.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	assert.True(t, p.InvalidateToken())
	token, err = p.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-2", token)

	// Within the expiry buffer the token is treated as expired
	now = now.Add(40 * time.Second)
	token, err = p.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-3", token)
}

func TestTokenProvider_ExpiryFromJWT(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "client",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	var calls atomic.Int32
	server := tokenServer(t, &calls, func(int32) string {
		return fmt.Sprintf(`{"access_token":%q}`, signed)
	})
	defer server.Close()

	p := newTestTokenProvider(server.URL)
	token, err := p.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, signed, token)
	assert.True(t, exp.Equal(p.expiresAt))
}

func TestTokenProvider_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "Empty access token", body: `{"access_token":"","expires_in":60}`},
		{name: "Negative expiry", body: `{"access_token":"abc","expires_in":-1}`},
		{name: "Opaque token without expiry", body: `{"access_token":"opaque"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := tokenServer(t, &calls, func(int32) string { return tt.body })
			defer server.Close()

			_, err := newTestTokenProvider(server.URL).GetToken(context.Background())
			assert.Error(t, err)
		})
	}

	t.Run("Non 200 response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := newTestTokenProvider(server.URL).GetToken(context.Background())
		assert.Error(t, err)
	})
}

func TestNewAuthProvider(t *testing.T) {
	tests := []struct {
		name           string
		cluster        config.ClusterConfig
		idp            config.IDPConfig
		expectedHeader string
	}{
		{
			name:           "API key wins",
			cluster:        config.ClusterConfig{APIKey: "abc", Username: "elastic", Password: "changeme"},
			expectedHeader: "ApiKey abc",
		},
		{
			name:           "Basic auth",
			cluster:        config.ClusterConfig{Username: "elastic", Password: "changeme"},
			expectedHeader: "Basic ZWxhc3RpYzpjaGFuZ2VtZQ==",
		},
		{
			name:           "No credentials",
			expectedHeader: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewAuthProvider(tt.cluster, tt.idp)
			req := httptest.NewRequest(http.MethodGet, "http://es/", nil)
			require.NoError(t, p.Authorize(context.Background(), req))
			assert.Equal(t, tt.expectedHeader, req.Header.Get("Authorization"))
			assert.False(t, p.InvalidateToken())
		})
	}

	t.Run("OAuth when only IDP is configured", func(t *testing.T) {
		p := NewAuthProvider(config.ClusterConfig{}, config.IDPConfig{TokenURL: "http://idp/token", ClientID: "c"})
		_, ok := p.(*tokenProvider)
		assert.True(t, ok)
	})
}
