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
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/ai-agent-management-platform/mlclient/utils"
)

func intPtr(v int) *int { return &v }

func TestPageParams_Validate(t *testing.T) {
	tests := []struct {
		name           string
		params         *PageParams
		expectedErrors []string
	}{
		{name: "Nil params are valid", params: nil},
		{name: "Unset bounds are valid", params: &PageParams{}},
		{name: "Zero bounds are valid", params: NewPageParams(0, 0)},
		{
			name:           "Negative from",
			params:         &PageParams{From: intPtr(-1)},
			expectedErrors: []string{"Parameter [from] cannot be < 0"},
		},
		{
			name:           "Negative size",
			params:         &PageParams{Size: intPtr(-5)},
			expectedErrors: []string{"Parameter [size] cannot be < 0"},
		},
		{
			name:           "Both negative",
			params:         NewPageParams(-1, -1),
			expectedErrors: []string{"Parameter [from] cannot be < 0", "Parameter [size] cannot be < 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.expectedErrors == nil {
				assert.NoError(t, err)
				return
			}
			var verr *utils.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.expectedErrors, verr.Errors())
		})
	}
}

func TestPageParams_Apply(t *testing.T) {
	t.Run("Both bounds", func(t *testing.T) {
		q := url.Values{}
		NewPageParams(10, 25).Apply(q)
		assert.Equal(t, "from=10&size=25", q.Encode())
	})

	t.Run("Only size", func(t *testing.T) {
		q := url.Values{}
		(&PageParams{Size: intPtr(3)}).Apply(q)
		assert.Equal(t, "size=3", q.Encode())
	})

	t.Run("Nil adds nothing", func(t *testing.T) {
		q := url.Values{}
		var p *PageParams
		p.Apply(q)
		assert.Empty(t, q)
	})
}

func TestPageParams_Equal(t *testing.T) {
	var nilParams *PageParams
	assert.True(t, nilParams.Equal(nil))
	assert.False(t, nilParams.Equal(&PageParams{}))
	assert.True(t, NewPageParams(1, 2).Equal(NewPageParams(1, 2)))
	assert.False(t, NewPageParams(1, 2).Equal(NewPageParams(1, 3)))
	assert.False(t, NewPageParams(1, 2).Equal(&PageParams{From: intPtr(1)}))
	assert.Equal(t, NewPageParams(1, 2).String(), NewPageParams(1, 2).String())
	assert.Equal(t, "from=<nil>,size=7", (&PageParams{Size: intPtr(7)}).String())
}
