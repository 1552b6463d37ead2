//go:build wireinject
// +build wireinject

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
	"github.com/google/wire"

	"github.com/wso2/ai-agent-management-platform/mlclient/config"
)

var configProviderSet = wire.NewSet(
	ProvideConfigFromPtr,
	ProvideRetryConfig,
)

var clientProviderSet = wire.NewSet(
	ProvideAuthProvider,
	ProvideMLClient,
)

var testClientProviderSet = wire.NewSet(
	ProvideTestAuthProvider,
	ProvideTestMLClient,
)

var loggerProviderSet = wire.NewSet(
	ProvideLogger,
)

func InitializeAppParams(cfg *config.Config) (*AppParams, error) {
	wire.Build(
		configProviderSet,
		clientProviderSet,
		loggerProviderSet,
		wire.Struct(new(AppParams), "*"),
	)
	return &AppParams{}, nil
}

func InitializeTestAppParamsWithClientMocks(cfg *config.Config, testClients TestClients) (*AppParams, error) {
	wire.Build(
		configProviderSet,
		testClientProviderSet,
		loggerProviderSet,
		wire.Struct(new(AppParams), "*"),
	)
	return &AppParams{}, nil
}
