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

// Package ml provides the machine learning API of the cluster: request
// parameter objects, their conversion to HTTP calls, and the client.
//
//go:generate moq -rm -fmt goimports -skip-ensure -pkg clientmocks -out ../clients/clientmocks/ml_client_fake.go . MachineLearningClient:MachineLearningClientMock
package ml

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/google/uuid"

	"github.com/wso2/ai-agent-management-platform/mlclient/clients/auth"
	"github.com/wso2/ai-agent-management-platform/mlclient/clients/requests"
	"github.com/wso2/ai-agent-management-platform/mlclient/logger"
	"github.com/wso2/ai-agent-management-platform/mlclient/utils"
)

// OpaqueIDHeader is echoed back by the cluster in task and slow logs
const OpaqueIDHeader = "X-Opaque-Id"

// Config contains configuration for the machine learning client
type Config struct {
	BaseURL      string
	AuthProvider auth.AuthProvider
	RetryConfig  requests.RequestRetryConfig
	// HTTPClient is the underlying transport; defaults to &http.Client{}
	HTTPClient requests.HttpClient
}

// MachineLearningClient defines the machine learning operations of the cluster
type MachineLearningClient interface {
	GetDataFrameAnalytics(ctx context.Context, req *GetDataFrameAnalyticsRequest) (*GetDataFrameAnalyticsResponse, error)
}

type machineLearningClient struct {
	baseURL    string
	httpClient requests.HttpClient
}

func NewMachineLearningClient(cfg *Config) (MachineLearningClient, error) {
	if cfg == nil || cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	authProvider := cfg.AuthProvider
	if authProvider == nil {
		authProvider = auth.NewNoAuthProvider()
	}

	// A 401 is retried only when the provider can send a fresh credential
	retryConfig := cfg.RetryConfig
	if retryConfig.RetryOnStatus == nil {
		retryConfig.RetryOnStatus = func(statusCode int) bool {
			if statusCode == http.StatusUnauthorized {
				refreshed := authProvider.InvalidateToken()
				if refreshed {
					slog.Info("Received 401 Unauthorized, invalidated cached token")
				}
				return refreshed
			}
			return slices.Contains(requests.TransientHTTPGETErrorCodes, statusCode)
		}
	}

	transport := cfg.HTTPClient
	if transport == nil {
		transport = &http.Client{}
	}

	return &machineLearningClient{
		baseURL:    cfg.BaseURL,
		httpClient: requests.NewRetryableHTTPClient(&authTransport{next: transport, auth: authProvider}, retryConfig),
	}, nil
}

// GetDataFrameAnalytics fetches the configurations of the requested data frame analytics jobs
func (c *machineLearningClient) GetDataFrameAnalytics(ctx context.Context, req *GetDataFrameAnalyticsRequest) (*GetDataFrameAnalyticsResponse, error) {
	if err := utils.ValidateAll(req, req.PageParams()); err != nil {
		return nil, fmt.Errorf("ml.GetDataFrameAnalytics: %w", err)
	}
	httpReq, err := GetDataFrameAnalyticsHTTPRequest(c.baseURL, req)
	if err != nil {
		return nil, fmt.Errorf("ml.GetDataFrameAnalytics: %w", err)
	}
	opaqueID := uuid.NewString()
	httpReq.SetHeader(OpaqueIDHeader, opaqueID)

	log := logger.GetLogger(ctx).With(slog.String("opaqueId", opaqueID))
	ctx = logger.WithLogger(ctx, log)

	result := requests.SendRequest(ctx, c.httpClient, httpReq)
	var resp GetDataFrameAnalyticsResponse
	if err := result.ScanResponse(&resp, http.StatusOK); err != nil {
		var httpErr *requests.HttpError
		if errors.As(err, &httpErr) {
			return nil, fmt.Errorf("ml.GetDataFrameAnalytics: %w", handleErrorResponse(httpErr.StatusCode, []byte(httpErr.Body)))
		}
		return nil, fmt.Errorf("ml.GetDataFrameAnalytics: %w", err)
	}
	log.Debug("fetched data frame analytics", slog.Int64("count", resp.Count))
	return &resp, nil
}

// authTransport attaches credentials on every attempt so a token refreshed
// after a 401 is picked up by the retry.
type authTransport struct {
	next requests.HttpClient
	auth auth.AuthProvider
}

func (t *authTransport) Do(req *http.Request) (*http.Response, error) {
	if err := t.auth.Authorize(req.Context(), req); err != nil {
		return nil, fmt.Errorf("failed to authorize request: %w", err)
	}
	return t.next.Do(req)
}

// handleErrorResponse converts HTTP status codes and response body to domain errors.
func handleErrorResponse(statusCode int, body []byte) error {
	errMsg := parseErrorMessage(body)

	switch {
	case statusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", utils.ErrBadRequest, errMsg)
	case statusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", utils.ErrUnauthorized, errMsg)
	case statusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", utils.ErrForbidden, errMsg)
	case statusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", utils.ErrDataFrameAnalyticsNotFound, errMsg)
	case statusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", utils.ErrServiceUnavailable, errMsg)
	default:
		return fmt.Errorf("unexpected status code %d: %s", statusCode, errMsg)
	}
}

// parseErrorMessage extracts error.reason from the cluster error envelope.
func parseErrorMessage(body []byte) string {
	if len(body) == 0 {
		return "unknown error"
	}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == nil {
		// If we can't parse JSON, return the raw body (truncated)
		if len(body) > 200 {
			return string(body[:200]) + "..."
		}
		return string(body)
	}
	if errResp.Error.Reason != "" {
		return errResp.Error.Reason
	}
	if errResp.Error.Type != "" {
		return errResp.Error.Type
	}
	return "unknown error"
}
