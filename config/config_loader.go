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

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

// maxRetryAttempts is the upper bound of HTTP_RETRY_ATTEMPTS_MAX
const maxRetryAttempts = 10

var config *Config

func GetConfig() *Config {
	return config
}

func init() {
	loadEnvs()
}

func loadEnvs() {
	envFilePath := os.Getenv("ENV_FILE_PATH")
	if envFilePath != "" {
		err := godotenv.Load(envFilePath)
		if err != nil {
			panic(err)
		}
	}

	r := &configReader{}
	config = readConfig(r)
	r.logAndExitIfErrorsFound()

	slog.Debug("configReader: configs loaded")
}

func readConfig(r *configReader) *Config {
	cfg := &Config{}
	cfg.AutoMaxProcsEnabled = r.readOptionalBool("AUTO_MAX_PROCS_ENABLED", true)

	// Logging configuration
	cfg.LogLevel = r.readOptionalString("LOG_LEVEL", "INFO")

	// Use Version from ldflags or environment variable override
	cfg.PackageVersion = r.readOptionalString("MLCLIENT_VERSION", Version)

	cfg.Cluster = ClusterConfig{
		URL:      r.readOptionalString("ES_URL", "http://localhost:9200"),
		APIKey:   r.readOptionalString("ES_API_KEY", ""),
		Username: r.readOptionalString("ES_USERNAME", ""),
		Password: r.readOptionalString("ES_PASSWORD", ""),
	}

	// IDP OAuth2 client credentials for token based auth
	cfg.IDP = IDPConfig{
		TokenURL:     r.readOptionalString("IDP_TOKEN_URL", ""),
		ClientID:     r.readOptionalString("IDP_CLIENT_ID", ""),
		ClientSecret: r.readOptionalString("IDP_CLIENT_SECRET", ""),
	}

	cfg.Retry = RetryConfig{
		WaitMinMilliseconds:   r.readOptionalInt64("HTTP_RETRY_WAIT_MIN_MS", 1000),
		WaitMaxMilliseconds:   r.readOptionalInt64("HTTP_RETRY_WAIT_MAX_MS", 10000),
		AttemptsMax:           int(r.readOptionalInt64("HTTP_RETRY_ATTEMPTS_MAX", 3)),
		AttemptTimeoutSeconds: int(r.readOptionalInt64("HTTP_ATTEMPT_TIMEOUT_SECONDS", 30)),
	}

	validateClusterConfigs(cfg, r)
	validateRetryConfigs(cfg, r)
	return cfg
}

func validateClusterConfigs(cfg *Config, r *configReader) {
	u, err := url.Parse(cfg.Cluster.URL)
	if err != nil {
		r.errors = append(r.errors, fmt.Errorf("ES_URL is not a valid URL: %w", err))
		return
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		r.errors = append(r.errors, fmt.Errorf("ES_URL must use http or https, got %q", cfg.Cluster.URL))
	}
	if u.Host == "" {
		r.errors = append(r.errors, fmt.Errorf("ES_URL must include a host, got %q", cfg.Cluster.URL))
	}
	if (cfg.Cluster.Username == "") != (cfg.Cluster.Password == "") {
		r.errors = append(r.errors, fmt.Errorf("ES_USERNAME and ES_PASSWORD must be set together"))
	}
	if cfg.IDP.TokenURL != "" && cfg.IDP.ClientID == "" {
		r.errors = append(r.errors, fmt.Errorf("IDP_CLIENT_ID is required when IDP_TOKEN_URL is set"))
	}
}

func validateRetryConfigs(cfg *Config, r *configReader) {
	if cfg.Retry.WaitMinMilliseconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_RETRY_WAIT_MIN_MS must be greater than 0, got %d", cfg.Retry.WaitMinMilliseconds))
	}
	if cfg.Retry.WaitMinMilliseconds > cfg.Retry.WaitMaxMilliseconds {
		r.errors = append(r.errors, fmt.Errorf("HTTP_RETRY_WAIT_MIN_MS (%d) must be <= HTTP_RETRY_WAIT_MAX_MS (%d)",
			cfg.Retry.WaitMinMilliseconds, cfg.Retry.WaitMaxMilliseconds))
	}
	if cfg.Retry.AttemptsMax < 0 || cfg.Retry.AttemptsMax > maxRetryAttempts {
		r.errors = append(r.errors, fmt.Errorf("HTTP_RETRY_ATTEMPTS_MAX must be between 0 and %d, got %d", maxRetryAttempts, cfg.Retry.AttemptsMax))
	}
	if cfg.Retry.AttemptTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_ATTEMPT_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.Retry.AttemptTimeoutSeconds))
	}
}
