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

package requests

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"time"

	"github.com/wso2/ai-agent-management-platform/mlclient/logger"
)

// WarningHeader carries deprecation notices from the cluster
const WarningHeader = "Warning"

// HttpClient interface for making HTTP requests.
// Use RetryableHTTPClient for retry support.
type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ HttpClient = (*http.Client)(nil)

// SendRequest builds and sends req and buffers the whole response.
// Deprecation warnings returned by the cluster are logged once per call.
func SendRequest(ctx context.Context, client HttpClient, req *HttpRequest) *Result {
	log := logger.GetLogger(ctx).With(slog.String("request", req.Name))

	httpReq, err := req.buildHttpRequest(ctx)
	if err != nil {
		return &Result{err: fmt.Errorf("failed to build http request: %w", err)}
	}

	start := time.Now()
	resp, err := client.Do(httpReq)
	if err != nil {
		return &Result{err: fmt.Errorf("request failed: %w", err)}
	}
	respBody, err := bufferBody(resp.Body, log)
	if err != nil {
		return &Result{err: fmt.Errorf("failed to read response body: %w", err)}
	}

	result := &Result{response: resp, responseBody: respBody}
	for _, warning := range result.Warnings() {
		log.Warn("cluster returned a warning", slog.String("warning", warning))
	}
	log.Debug("request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))
	return result
}

// Result holds the buffered response of SendRequest, or the error that
// prevented one.
type Result struct {
	responseBody []byte
	response     *http.Response
	err          error
}

// Err returns the transport error, if any.
func (r *Result) Err() error {
	return r.err
}

// StatusCode returns the response status, or 0 when no response was received.
func (r *Result) StatusCode() int {
	if r.err != nil || r.response == nil {
		return 0
	}
	return r.response.StatusCode
}

// Body returns the buffered response body.
func (r *Result) Body() []byte {
	return r.responseBody
}

// GetHeader returns the value of a response header.
func (r *Result) GetHeader(key string) string {
	if r.err != nil || r.response == nil {
		return ""
	}
	return r.response.Header.Get(key)
}

// Warnings returns every Warning header of the response in order.
func (r *Result) Warnings() []string {
	if r.err != nil || r.response == nil {
		return nil
	}
	return r.response.Header.Values(WarningHeader)
}

// ScanResponse decodes the JSON body into body when the status is
// successStatus. Any other status is returned as an *HttpError carrying the
// raw body.
func (r *Result) ScanResponse(body any, successStatus int) error {
	switch {
	case r.err != nil:
		return r.err
	case r.response == nil:
		return fmt.Errorf("unexpected nil response")
	case body == nil || reflect.ValueOf(body).Kind() != reflect.Ptr:
		return fmt.Errorf("non-nil pointer expected for decoding response body")
	case r.response.StatusCode != successStatus:
		return &HttpError{StatusCode: r.response.StatusCode, Body: string(r.responseBody)}
	}
	if err := json.Unmarshal(r.responseBody, body); err != nil {
		return fmt.Errorf("failed to decode response body for status %d: %w", r.response.StatusCode, err)
	}
	return nil
}
