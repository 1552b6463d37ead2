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
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/wso2/ai-agent-management-platform/mlclient/logger"
)

// RetryableHTTPClient wraps an HttpClient with retry logic.
// It implements HttpClient interface so it can be handed to SendRequest.
type RetryableHTTPClient struct {
	client HttpClient
	config RequestRetryConfig
}

// NewRetryableHTTPClient creates a new RetryableHTTPClient.
// Config is optional - defaults will be used if not provided.
func NewRetryableHTTPClient(client HttpClient, config ...RequestRetryConfig) *RetryableHTTPClient {
	if client == nil {
		client = &http.Client{}
	}
	var cfg RequestRetryConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	return &RetryableHTTPClient{
		client: client,
		config: cfg,
	}
}

// Do sends req until it gets a response that is not retryable or the attempts
// run out. The returned response body is always fully buffered. When the last
// attempt still returns a retryable status, that response is returned as is
// so the caller can map it.
func (c *RetryableHTTPClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	cfg := c.config.getRetryConfig(&HttpRequest{Method: req.Method})
	log := logger.GetLogger(ctx).With(
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
	)

	body, err := bufferBody(req.Body, log)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	maxAttempts := cfg.RetryAttemptsMax + 1
	for attempt := 1; ; attempt++ {
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
		}

		start := time.Now()
		resp, err := c.doAttempt(req, cfg.AttemptTimeout, log)
		if ctx.Err() != nil {
			return nil, fmt.Errorf("context cancelled or timed out: %w", ctx.Err())
		}
		if !cfg.shouldRetry(ctx, resp, err) {
			if err != nil {
				log.Warn("HTTP request failed with non-retryable error", slog.String("error", err.Error()))
				return nil, fmt.Errorf("request failed: %w", err)
			}
			return resp, nil
		}

		attrs := []any{
			slog.Int("attempt", attempt),
			slog.Int("maxAttempts", maxAttempts),
			slog.Duration("duration", time.Since(start)),
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		} else {
			attrs = append(attrs, slog.Int("status", resp.StatusCode))
		}

		if attempt >= maxAttempts {
			log.Warn("HTTP request still failing after all attempts", attrs...)
			if err != nil {
				return nil, fmt.Errorf("request failed after %d attempts: %w", attempt, err)
			}
			return resp, nil
		}

		wait := cfg.Backoff(cfg.RetryWaitMin, cfg.RetryWaitMax, attempt-1, resp)
		log.Debug("HTTP request attempt failed, retrying", append(attrs, slog.Duration("wait", wait))...)
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, fmt.Errorf("context cancelled during retry wait: %w", ctx.Err())
		}
	}
}

// doAttempt sends one attempt bounded by timeout. The response body is read
// before the attempt context is cancelled.
func (c *RetryableHTTPClient) doAttempt(req *http.Request, timeout time.Duration, log *slog.Logger) (*http.Response, error) {
	attemptCtx, cancel := context.WithTimeout(req.Context(), timeout)
	defer cancel()

	resp, err := c.client.Do(req.Clone(attemptCtx))
	if err != nil {
		return nil, err
	}
	respBody, err := bufferBody(resp.Body, log)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(respBody))
	return resp, nil
}

func bufferBody(body io.ReadCloser, log *slog.Logger) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	data, err := io.ReadAll(body)
	if closeErr := body.Close(); closeErr != nil {
		log.Warn("failed to close body", slog.String("error", closeErr.Error()))
	}
	return data, err
}

// EqualJitterBackoff doubles min on every attempt up to max and waits a random
// duration in the upper half of that window. A Retry-After header on a 429 or
// 503 is honoured unchanged.
func EqualJitterBackoff(min, max time.Duration, attemptNum int, resp *http.Response) time.Duration {
	if resp != nil && resp.Header.Get("Retry-After") != "" {
		return retryablehttp.DefaultBackoff(min, max, attemptNum, resp)
	}
	base := retryablehttp.DefaultBackoff(min, max, attemptNum, nil)
	half := base / 2
	if half <= 0 {
		return base
	}
	return half + time.Duration(rand.Int64N(int64(half)))
}
