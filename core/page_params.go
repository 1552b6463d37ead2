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

package core

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/wso2/ai-agent-management-platform/mlclient/utils"
)

// Query parameter names contributed by PageParams
const (
	FromParam = "from"
	SizeParam = "size"
)

// Server-side defaults applied when a bound is left unset
const (
	DefaultFrom = 0
	DefaultSize = 100
)

// PageParams is an offset/size pair controlling result pagination.
// A nil bound is omitted from the request and the server default applies.
type PageParams struct {
	From *int
	Size *int
}

// NewPageParams returns page params with both bounds set.
func NewPageParams(from, size int) *PageParams {
	return &PageParams{From: &from, Size: &size}
}

// Validate rejects negative bounds.
func (p *PageParams) Validate() error {
	if p == nil {
		return nil
	}
	var verr *utils.ValidationError
	if p.From != nil && *p.From < 0 {
		verr = utils.NewValidationError("Parameter [" + FromParam + "] cannot be < 0")
	}
	if p.Size != nil && *p.Size < 0 {
		if verr == nil {
			verr = utils.NewValidationError()
		}
		verr.AddError("Parameter [" + SizeParam + "] cannot be < 0")
	}
	if verr != nil {
		return verr
	}
	return nil
}

// Apply adds the set bounds to the query values.
func (p *PageParams) Apply(q url.Values) {
	if p == nil {
		return
	}
	if p.From != nil {
		q.Set(FromParam, strconv.Itoa(*p.From))
	}
	if p.Size != nil {
		q.Set(SizeParam, strconv.Itoa(*p.Size))
	}
}

// Equal reports whether both page params carry the same bounds.
// Two nil values are equal.
func (p *PageParams) Equal(other *PageParams) bool {
	if p == nil || other == nil {
		return p == other
	}
	return equalIntPtr(p.From, other.From) && equalIntPtr(p.Size, other.Size)
}

func (p *PageParams) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("from=%s,size=%s", formatIntPtr(p.From), formatIntPtr(p.Size))
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func formatIntPtr(v *int) string {
	if v == nil {
		return "<nil>"
	}
	return strconv.Itoa(*v)
}
