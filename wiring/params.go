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

package wiring

import (
	"log/slog"

	"github.com/wso2/ai-agent-management-platform/mlclient/clients/auth"
	"github.com/wso2/ai-agent-management-platform/mlclient/clients/requests"
	"github.com/wso2/ai-agent-management-platform/mlclient/config"
	"github.com/wso2/ai-agent-management-platform/mlclient/ml"
)

// AppParams contains all wired application dependencies
type AppParams struct {
	Config config.Config
	Logger *slog.Logger

	// Clients
	AuthProvider auth.AuthProvider
	MLClient     ml.MachineLearningClient
}

// TestClients contains all mock clients needed for testing
type TestClients struct {
	AuthProvider auth.AuthProvider
	MLClient     ml.MachineLearningClient
}

func ProvideConfigFromPtr(config *config.Config) config.Config {
	return *config
}

// ProvideLogger provides the configured slog.Logger instance
func ProvideLogger() *slog.Logger {
	return slog.Default()
}

// ProvideAuthProvider selects the credential source for the cluster
func ProvideAuthProvider(cfg config.Config) auth.AuthProvider {
	return auth.NewAuthProvider(cfg.Cluster, cfg.IDP)
}

func ProvideRetryConfig(cfg config.Config) requests.RequestRetryConfig {
	return requests.RequestRetryConfig{
		RetryWaitMin:     cfg.Retry.WaitMin(),
		RetryWaitMax:     cfg.Retry.WaitMax(),
		RetryAttemptsMax: retryAttempts(cfg.Retry.AttemptsMax),
		AttemptTimeout:   cfg.Retry.AttemptTimeout(),
	}
}

// retryAttempts maps HTTP_RETRY_ATTEMPTS_MAX=0 to "no retries"; the
// transport reads 0 as "use the default".
func retryAttempts(n int) int {
	if n == 0 {
		return -1
	}
	return n
}

// ProvideMLClient creates the machine learning client
func ProvideMLClient(cfg config.Config, authProvider auth.AuthProvider, retryConfig requests.RequestRetryConfig) (ml.MachineLearningClient, error) {
	return ml.NewMachineLearningClient(&ml.Config{
		BaseURL:      cfg.Cluster.URL,
		AuthProvider: authProvider,
		RetryConfig:  retryConfig,
	})
}

// ProvideTestMLClient extracts the MachineLearningClient from TestClients
func ProvideTestMLClient(testClients TestClients) ml.MachineLearningClient {
	return testClients.MLClient
}

// ProvideTestAuthProvider extracts the AuthProvider from TestClients
func ProvideTestAuthProvider(testClients TestClients) auth.AuthProvider {
	if testClients.AuthProvider == nil {
		return auth.NewNoAuthProvider()
	}
	return testClients.AuthProvider
}
