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

package ml

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/wso2/ai-agent-management-platform/mlclient/clients/requests"
)

const dataFrameAnalyticsPath = "/_ml/data_frame/analytics/"

// GetDataFrameAnalyticsHTTPRequest converts req into the outbound call
// against baseURL. The request is validated first and its validation error
// returned unchanged.
func GetDataFrameAnalyticsHTTPRequest(baseURL string, req *GetDataFrameAnalyticsRequest) (*requests.HttpRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	escaped := make([]string, len(req.ids))
	for i, id := range req.ids {
		escaped[i] = url.PathEscape(id)
	}

	httpReq := &requests.HttpRequest{
		Name:   "ml.GetDataFrameAnalytics",
		URL:    strings.TrimRight(baseURL, "/") + dataFrameAnalyticsPath + strings.Join(escaped, ","),
		Method: http.MethodGet,
	}
	httpReq.SetHeader("Accept", "application/json")

	req.pageParams.Apply(httpReq.Query())
	if req.allowNoMatch != nil {
		httpReq.SetQueryParam(AllowNoMatchParam, strconv.FormatBool(*req.allowNoMatch))
	}
	if req.excludeGenerated != nil {
		httpReq.SetQueryParam(ExcludeGeneratedParam, strconv.FormatBool(*req.excludeGenerated))
	}
	return httpReq, nil
}
