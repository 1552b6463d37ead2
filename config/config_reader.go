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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type configReader struct {
	errors []error
}

func (r *configReader) readOptionalString(key string, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func (r *configReader) readOptionalInt64(key string, defaultValue int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		r.errors = append(r.errors, fmt.Errorf("environment variable %s must be an integer, got %q", key, value))
		return defaultValue
	}
	return parsed
}

func (r *configReader) readOptionalBool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		r.errors = append(r.errors, fmt.Errorf("environment variable %s must be a boolean, got %q", key, value))
		return defaultValue
	}
	return parsed
}

func (r *configReader) err() error {
	return errors.Join(r.errors...)
}

func (r *configReader) logAndExitIfErrorsFound() {
	if len(r.errors) == 0 {
		return
	}
	for _, err := range r.errors {
		slog.Error("configReader: invalid configuration", "error", err)
	}
	os.Exit(1)
}
