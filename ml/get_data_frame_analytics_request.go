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
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/wso2/ai-agent-management-platform/mlclient/core"
	"github.com/wso2/ai-agent-management-platform/mlclient/utils"
)

// Query parameter names understood by the get data frame analytics API
const (
	AllowNoMatchParam     = "allow_no_match"
	ExcludeGeneratedParam = "exclude_generated"
)

// AllDataFrameAnalytics is the id that matches every data frame analytics job
const AllDataFrameAnalytics = "_all"

const errMissingID = "data frame analytics id must not be null"

// GetDataFrameAnalyticsRequest carries the parameters of a get data frame
// analytics call. The ids are fixed at construction; the flags and page
// params may be changed until the request is sent.
//
// A request is not safe for concurrent mutation. The getters, Validate, Equal,
// Key and HashCode accept a nil request; the setters do not.
type GetDataFrameAnalyticsRequest struct {
	ids              []string
	allowNoMatch     *bool
	excludeGenerated *bool
	pageParams       *core.PageParams
}

var _ utils.Validatable = (*GetDataFrameAnalyticsRequest)(nil)

// NewGetDataFrameAnalyticsRequest creates a request for the given ids.
// Ids may be exact ids or wildcard expressions. An empty id list is accepted
// here and reported by Validate.
func NewGetDataFrameAnalyticsRequest(ids ...string) *GetDataFrameAnalyticsRequest {
	stored := make([]string, len(ids))
	copy(stored, ids)
	return &GetDataFrameAnalyticsRequest{ids: stored}
}

// NewGetAllDataFrameAnalyticsRequest creates a request for every data frame analytics job.
func NewGetAllDataFrameAnalyticsRequest() *GetDataFrameAnalyticsRequest {
	return NewGetDataFrameAnalyticsRequest(AllDataFrameAnalytics)
}

// IDs returns a copy of the requested ids.
func (r *GetDataFrameAnalyticsRequest) IDs() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.ids)
}

// AllowNoMatch returns nil when the flag is unset.
func (r *GetDataFrameAnalyticsRequest) AllowNoMatch() *bool {
	if r == nil {
		return nil
	}
	return cloneBool(r.allowNoMatch)
}

// SetAllowNoMatch controls whether a wildcard (or _all) that matches nothing
// is an error. With false the server returns an error for an empty match.
func (r *GetDataFrameAnalyticsRequest) SetAllowNoMatch(allowNoMatch bool) *GetDataFrameAnalyticsRequest {
	r.allowNoMatch = &allowNoMatch
	return r
}

// ExcludeGenerated returns nil when the flag is unset.
func (r *GetDataFrameAnalyticsRequest) ExcludeGenerated() *bool {
	if r == nil {
		return nil
	}
	return cloneBool(r.excludeGenerated)
}

// SetExcludeGenerated strips generated fields (create_time, version, ...)
// from the returned configurations, so they can be put into another cluster.
// The server default is false.
func (r *GetDataFrameAnalyticsRequest) SetExcludeGenerated(excludeGenerated bool) *GetDataFrameAnalyticsRequest {
	r.excludeGenerated = &excludeGenerated
	return r
}

// PageParams returns the page window, or nil when none was set.
func (r *GetDataFrameAnalyticsRequest) PageParams() *core.PageParams {
	if r == nil {
		return nil
	}
	return r.pageParams
}

// SetPageParams sets the page window; nil clears it.
func (r *GetDataFrameAnalyticsRequest) SetPageParams(pageParams *core.PageParams) *GetDataFrameAnalyticsRequest {
	r.pageParams = pageParams
	return r
}

// Validate returns a *utils.ValidationError when no id was given, nil otherwise.
func (r *GetDataFrameAnalyticsRequest) Validate() error {
	if r == nil || len(r.ids) == 0 {
		return utils.NewValidationError(errMissingID)
	}
	return nil
}

// Equal reports whether both requests carry the same ids, flags and page params.
func (r *GetDataFrameAnalyticsRequest) Equal(other *GetDataFrameAnalyticsRequest) bool {
	if r == nil || other == nil {
		return r == other
	}
	return slices.Equal(r.ids, other.ids) &&
		equalBool(r.allowNoMatch, other.allowNoMatch) &&
		equalBool(r.excludeGenerated, other.excludeGenerated) &&
		r.pageParams.Equal(other.pageParams)
}

// Key returns a canonical string form of the request. Equal requests have
// equal keys, so it can be used as a map key.
func (r *GetDataFrameAnalyticsRequest) Key() string {
	if r == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString("ids=[")
	for i, id := range r.ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Quote(id))
	}
	sb.WriteString("];")
	sb.WriteString(AllowNoMatchParam + "=" + formatBool(r.allowNoMatch) + ";")
	sb.WriteString(ExcludeGeneratedParam + "=" + formatBool(r.excludeGenerated) + ";")
	sb.WriteString("page=" + r.pageParams.String())
	return sb.String()
}

// HashCode returns a hash of Key.
func (r *GetDataFrameAnalyticsRequest) HashCode() uint64 {
	return xxhash.Sum64String(r.Key())
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func equalBool(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func formatBool(b *bool) string {
	if b == nil {
		return "<nil>"
	}
	return strconv.FormatBool(*b)
}
