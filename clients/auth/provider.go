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
	"encoding/base64"
	"net/http"

	"github.com/wso2/ai-agent-management-platform/mlclient/config"
)

// AuthProvider attaches credentials to outbound cluster requests
type AuthProvider interface {
	// Authorize sets the Authorization header on req
	Authorize(ctx context.Context, req *http.Request) error
	// InvalidateToken drops any cached credential so the next call refreshes it.
	// It reports whether the next Authorize may send a different credential;
	// static credentials return false.
	InvalidateToken() bool
}

// NewAuthProvider picks the credential source from the cluster and IDP config.
// An API key wins over basic auth, which wins over OAuth2 client credentials.
func NewAuthProvider(cluster config.ClusterConfig, idp config.IDPConfig) AuthProvider {
	switch {
	case cluster.APIKey != "":
		return NewAPIKeyProvider(cluster.APIKey)
	case cluster.Username != "":
		return NewBasicAuthProvider(cluster.Username, cluster.Password)
	case idp.TokenURL != "":
		return NewTokenProvider(idp)
	default:
		return NewNoAuthProvider()
	}
}

type apiKeyProvider struct {
	key string
}

// NewAPIKeyProvider returns a provider sending "Authorization: ApiKey <key>".
// The key is the base64 encoded "id:api_key" pair returned by the cluster.
func NewAPIKeyProvider(key string) AuthProvider {
	return &apiKeyProvider{key: key}
}

func (p *apiKeyProvider) Authorize(_ context.Context, req *http.Request) error {
	req.Header.Set("Authorization", "ApiKey "+p.key)
	return nil
}

func (p *apiKeyProvider) InvalidateToken() bool { return false }

type basicAuthProvider struct {
	header string
}

// NewBasicAuthProvider returns a provider using HTTP basic authentication
func NewBasicAuthProvider(username, password string) AuthProvider {
	creds := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	return &basicAuthProvider{header: "Basic " + creds}
}

func (p *basicAuthProvider) Authorize(_ context.Context, req *http.Request) error {
	req.Header.Set("Authorization", p.header)
	return nil
}

func (p *basicAuthProvider) InvalidateToken() bool { return false }

type noAuthProvider struct{}

// NewNoAuthProvider returns a provider that sends no credentials
func NewNoAuthProvider() AuthProvider {
	return noAuthProvider{}
}

func (noAuthProvider) Authorize(context.Context, *http.Request) error { return nil }

func (noAuthProvider) InvalidateToken() bool { return false }
