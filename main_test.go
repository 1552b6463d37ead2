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

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ai-agent-management-platform/mlclient/clients/clientmocks"
	"github.com/wso2/ai-agent-management-platform/mlclient/core"
	"github.com/wso2/ai-agent-management-platform/mlclient/ml"
	"github.com/wso2/ai-agent-management-platform/mlclient/utils"
)

func TestParseFlags(t *testing.T) {
	t.Run("Defaults leave everything unset", func(t *testing.T) {
		opts, err := parseFlags([]string{"-ids", "a"})
		require.NoError(t, err)
		req := buildRequest(opts)
		assert.Equal(t, []string{"a"}, req.IDs())
		assert.Nil(t, req.AllowNoMatch())
		assert.Nil(t, req.ExcludeGenerated())
		assert.Nil(t, req.PageParams())
	})

	t.Run("All flags", func(t *testing.T) {
		opts, err := parseFlags([]string{
			"-ids", "a, b,,c", "-allow-no-match=false", "-exclude-generated",
			"-from", "5", "-size", "20", "-output", "yaml",
		})
		require.NoError(t, err)
		req := buildRequest(opts)

		expected := ml.NewGetDataFrameAnalyticsRequest("a", "b", "c").
			SetAllowNoMatch(false).
			SetExcludeGenerated(true).
			SetPageParams(core.NewPageParams(5, 20))
		assert.True(t, expected.Equal(req), "got %s", req.Key())
		assert.Equal(t, "yaml", opts.output)
	})

	t.Run("All jobs", func(t *testing.T) {
		opts, err := parseFlags([]string{"-all", "-size", "10"})
		require.NoError(t, err)
		req := buildRequest(opts)
		assert.Equal(t, []string{ml.AllDataFrameAnalytics}, req.IDs())
		require.NotNil(t, req.PageParams())
		assert.Nil(t, req.PageParams().From)
		assert.Equal(t, 10, *req.PageParams().Size)
	})

	t.Run("No ids builds an invalid request", func(t *testing.T) {
		opts, err := parseFlags(nil)
		require.NoError(t, err)
		assert.Error(t, buildRequest(opts).Validate())
	})

	t.Run("Negative page values reach validation", func(t *testing.T) {
		opts, err := parseFlags([]string{"-ids", "a", "-from", "-1", "-size", "-2"})
		require.NoError(t, err)
		req := buildRequest(opts)
		require.NotNil(t, req.PageParams())

		err = req.PageParams().Validate()
		var verr *utils.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Parameter [from] cannot be < 0", "Parameter [size] cannot be < 0"}, verr.Errors())
	})

	t.Run("Rejects all together with ids", func(t *testing.T) {
		_, err := parseFlags([]string{"-all", "-ids", "a"})
		assert.Error(t, err)
	})

	t.Run("Rejects non numeric size", func(t *testing.T) {
		_, err := parseFlags([]string{"-ids", "a", "-size", "ten"})
		assert.Error(t, err)
	})

	t.Run("Rejects unknown output", func(t *testing.T) {
		_, err := parseFlags([]string{"-output", "xml"})
		assert.Error(t, err)
	})

	t.Run("Rejects bad boolean", func(t *testing.T) {
		_, err := parseFlags([]string{"-allow-no-match=maybe"})
		assert.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	mock := &clientmocks.MachineLearningClientMock{
		GetDataFrameAnalyticsFunc: func(ctx context.Context, req *ml.GetDataFrameAnalyticsRequest) (*ml.GetDataFrameAnalyticsResponse, error) {
			if err := req.Validate(); err != nil {
				return nil, err
			}
			return &ml.GetDataFrameAnalyticsResponse{
				Count:     1,
				Analytics: []ml.DataFrameAnalyticsConfig{{ID: "job-a", ModelMemoryLimit: "1gb"}},
			}, nil
		},
	}

	t.Run("JSON output", func(t *testing.T) {
		var out bytes.Buffer
		opts, err := parseFlags([]string{"-ids", "job-a"})
		require.NoError(t, err)
		require.NoError(t, run(context.Background(), mock, opts, &out))
		assert.JSONEq(t, `{"count":1,"data_frame_analytics":[{"id":"job-a","model_memory_limit":"1gb"}]}`, out.String())
	})

	t.Run("YAML output", func(t *testing.T) {
		var out bytes.Buffer
		opts, err := parseFlags([]string{"-ids", "job-a", "-output", "yaml"})
		require.NoError(t, err)
		require.NoError(t, run(context.Background(), mock, opts, &out))
		assert.Contains(t, out.String(), "count: 1")
		assert.Contains(t, out.String(), "- id: job-a")
	})

	t.Run("Validation error is returned", func(t *testing.T) {
		var out bytes.Buffer
		opts, err := parseFlags(nil)
		require.NoError(t, err)
		err = run(context.Background(), mock, opts, &out)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
		assert.Empty(t, out.String())
	})

	assert.Len(t, mock.GetDataFrameAnalyticsCalls(), 3)
}
