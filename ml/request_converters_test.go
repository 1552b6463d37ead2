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
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ai-agent-management-platform/mlclient/core"
	"github.com/wso2/ai-agent-management-platform/mlclient/utils"
)

func TestGetDataFrameAnalyticsHTTPRequest(t *testing.T) {
	t.Run("Joins ids into the path", func(t *testing.T) {
		httpReq, err := GetDataFrameAnalyticsHTTPRequest("http://localhost:9200/", NewGetDataFrameAnalyticsRequest("job-a", "job-b"))
		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, httpReq.Method)
		assert.Equal(t, "http://localhost:9200/_ml/data_frame/analytics/job-a,job-b", httpReq.URL)
		assert.Empty(t, httpReq.Query())
	})

	t.Run("Omits unset flags", func(t *testing.T) {
		httpReq, err := GetDataFrameAnalyticsHTTPRequest("http://es", NewGetAllDataFrameAnalyticsRequest())
		require.NoError(t, err)
		assert.Equal(t, "http://es/_ml/data_frame/analytics/_all", httpReq.URL)
		_, hasAllow := httpReq.Query()[AllowNoMatchParam]
		_, hasExclude := httpReq.Query()[ExcludeGeneratedParam]
		assert.False(t, hasAllow)
		assert.False(t, hasExclude)
	})

	t.Run("Sends false flags", func(t *testing.T) {
		req := NewGetDataFrameAnalyticsRequest("a").SetAllowNoMatch(false).SetExcludeGenerated(false)
		httpReq, err := GetDataFrameAnalyticsHTTPRequest("http://es", req)
		require.NoError(t, err)
		assert.Equal(t, "false", httpReq.Query().Get("allow_no_match"))
		assert.Equal(t, "false", httpReq.Query().Get("exclude_generated"))
	})

	t.Run("Adds page params", func(t *testing.T) {
		req := NewGetDataFrameAnalyticsRequest("a").SetPageParams(core.NewPageParams(5, 50)).SetExcludeGenerated(true)
		httpReq, err := GetDataFrameAnalyticsHTTPRequest("http://es", req)
		require.NoError(t, err)
		assert.Equal(t, "5", httpReq.Query().Get("from"))
		assert.Equal(t, "50", httpReq.Query().Get("size"))
		assert.Equal(t, "true", httpReq.Query().Get("exclude_generated"))
	})

	t.Run("Rejects invalid request", func(t *testing.T) {
		_, err := GetDataFrameAnalyticsHTTPRequest("http://es", NewGetDataFrameAnalyticsRequest())
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})
}

func TestGetDataFrameAnalyticsHTTPRequest_WireFormat(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":0,"data_frame_analytics":[]}`))
	}))
	defer server.Close()

	client, err := NewMachineLearningClient(&Config{BaseURL: server.URL})
	require.NoError(t, err)

	req := NewGetDataFrameAnalyticsRequest("job-*", "other").
		SetAllowNoMatch(true).
		SetPageParams(core.NewPageParams(0, 10))
	_, err = client.GetDataFrameAnalytics(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "/_ml/data_frame/analytics/job-*,other", gotPath)
	assert.Equal(t, "allow_no_match=true&from=0&size=10", gotQuery)
}
