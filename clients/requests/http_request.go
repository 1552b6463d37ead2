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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// HttpRequest describes an outbound call before it is turned into an *http.Request.
type HttpRequest struct {
	// Name identifies the call in logs, e.g. "ml.GetDataFrameAnalytics".
	Name   string
	URL    string
	Method string

	headers http.Header
	query   url.Values
	body    []byte
	bodyErr error
}

// SetHeader sets a request header, replacing any existing value.
func (r *HttpRequest) SetHeader(key, value string) *HttpRequest {
	if r.headers == nil {
		r.headers = http.Header{}
	}
	r.headers.Set(key, value)
	return r
}

// SetQueryParam sets a query parameter, replacing any existing value.
func (r *HttpRequest) SetQueryParam(key, value string) *HttpRequest {
	r.Query().Set(key, value)
	return r
}

// Query returns the query values that will be merged into URL.
func (r *HttpRequest) Query() url.Values {
	if r.query == nil {
		r.query = url.Values{}
	}
	return r.query
}

// Header returns the value of a request header.
func (r *HttpRequest) Header(key string) string {
	return r.headers.Get(key)
}

// SetJson marshals body as the JSON request payload.
func (r *HttpRequest) SetJson(body any) *HttpRequest {
	data, err := json.Marshal(body)
	if err != nil {
		r.bodyErr = fmt.Errorf("failed to marshal request body: %w", err)
		return r
	}
	r.body = data
	r.SetHeader("Content-Type", "application/json")
	return r
}

// SetFormData encodes data as an application/x-www-form-urlencoded payload.
func (r *HttpRequest) SetFormData(data map[string]string) *HttpRequest {
	form := url.Values{}
	for k, v := range data {
		form.Set(k, v)
	}
	r.body = []byte(form.Encode())
	r.SetHeader("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func (r *HttpRequest) buildHttpRequest(ctx context.Context) (*http.Request, error) {
	if r.bodyErr != nil {
		return nil, r.bodyErr
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", r.URL, err)
	}
	if len(r.query) > 0 {
		q := u.Query()
		for k, vs := range r.query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), u.String(), body)
	if err != nil {
		return nil, err
	}
	for k, vs := range r.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}
