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

package config

import "time"

// Version is set at build time via -ldflags "-X .../config.Version=..."
var Version = "dev"

// Config holds all configuration for the client
type Config struct {
	PackageVersion      string
	AutoMaxProcsEnabled bool
	LogLevel            string

	// Cluster connection and credentials
	Cluster ClusterConfig

	// IDP OAuth2 client credentials, used when no API key or basic auth is configured
	IDP IDPConfig

	// Outbound HTTP retry behavior
	Retry RetryConfig
}

// ClusterConfig holds the remote cluster endpoint and credentials
type ClusterConfig struct {
	// URL is the cluster base URL, e.g. http://localhost:9200
	URL      string
	APIKey   string `json:"-"`
	Username string
	Password string `json:"-"`
}

type IDPConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string `json:"-"`
}

// RetryConfig mirrors requests.RequestRetryConfig in env-friendly units
type RetryConfig struct {
	WaitMinMilliseconds   int64
	WaitMaxMilliseconds   int64
	AttemptsMax           int
	AttemptTimeoutSeconds int
}

func (r RetryConfig) WaitMin() time.Duration {
	return time.Duration(r.WaitMinMilliseconds) * time.Millisecond
}

func (r RetryConfig) WaitMax() time.Duration {
	return time.Duration(r.WaitMaxMilliseconds) * time.Millisecond
}

func (r RetryConfig) AttemptTimeout() time.Duration {
	return time.Duration(r.AttemptTimeoutSeconds) * time.Second
}
