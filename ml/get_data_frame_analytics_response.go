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
	"encoding/json"
	"time"
)

// GetDataFrameAnalyticsResponse is the body returned by the get data frame analytics API
type GetDataFrameAnalyticsResponse struct {
	Count     int64                      `json:"count"`
	Analytics []DataFrameAnalyticsConfig `json:"data_frame_analytics"`
}

// DataFrameAnalyticsConfig is the stored configuration of one data frame analytics job
type DataFrameAnalyticsConfig struct {
	ID          string                    `json:"id"`
	Description string                    `json:"description,omitempty"`
	Source      *DataFrameAnalyticsSource `json:"source,omitempty"`
	Dest        *DataFrameAnalyticsDest   `json:"dest,omitempty"`
	// Analysis holds a single keyed object, e.g. {"outlier_detection": {...}}
	Analysis         json.RawMessage     `json:"analysis,omitempty"`
	AnalyzedFields   *FetchSourceContext `json:"analyzed_fields,omitempty"`
	ModelMemoryLimit string              `json:"model_memory_limit,omitempty"`
	// CreateTime is epoch milliseconds; absent when generated fields are excluded
	CreateTime     *int64 `json:"create_time,omitempty"`
	Version        string `json:"version,omitempty"`
	AllowLazyStart *bool  `json:"allow_lazy_start,omitempty"`
	MaxNumThreads  *int   `json:"max_num_threads,omitempty"`
}

// CreatedAt converts CreateTime to a time.Time. The zero time is returned when it is unset.
func (c DataFrameAnalyticsConfig) CreatedAt() time.Time {
	if c.CreateTime == nil {
		return time.Time{}
	}
	return time.UnixMilli(*c.CreateTime).UTC()
}

// AnalysisType returns the name of the configured analysis, e.g. "regression".
func (c DataFrameAnalyticsConfig) AnalysisType() string {
	var analysis map[string]json.RawMessage
	if err := json.Unmarshal(c.Analysis, &analysis); err != nil {
		return ""
	}
	for name := range analysis {
		return name
	}
	return ""
}

type DataFrameAnalyticsSource struct {
	Index           []string            `json:"index"`
	Query           json.RawMessage     `json:"query,omitempty"`
	SourceFields    *FetchSourceContext `json:"_source,omitempty"`
	RuntimeMappings json.RawMessage     `json:"runtime_mappings,omitempty"`
}

type DataFrameAnalyticsDest struct {
	Index        string `json:"index"`
	ResultsField string `json:"results_field,omitempty"`
}

// FetchSourceContext selects fields by include and exclude patterns
type FetchSourceContext struct {
	Includes []string `json:"includes,omitempty"`
	Excludes []string `json:"excludes,omitempty"`
}

// errorResponse is the error envelope returned by the cluster
type errorResponse struct {
	Error *struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"error"`
	Status int `json:"status"`
}
