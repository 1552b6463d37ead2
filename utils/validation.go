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

package utils

import (
	"strconv"
	"strings"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// Validatable is implemented by request objects that can check themselves
// before being sent.
type Validatable interface {
	Validate() error
}

// ValidationError collects one or more validation failures of a request.
type ValidationError struct {
	errors []string
}

// NewValidationError returns a ValidationError holding the given messages.
func NewValidationError(msgs ...string) *ValidationError {
	v := &ValidationError{}
	for _, msg := range msgs {
		v.AddError(msg)
	}
	return v
}

// AddError appends a validation failure message.
func (v *ValidationError) AddError(msg string) *ValidationError {
	v.errors = append(v.errors, msg)
	return v
}

// Errors returns the collected messages in the order they were added.
func (v *ValidationError) Errors() []string {
	out := make([]string, len(v.errors))
	copy(out, v.errors)
	return out
}

func (v *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("Validation Failed: ")
	for i, msg := range v.errors {
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(": ")
		sb.WriteString(msg)
		sb.WriteString(";")
	}
	return sb.String()
}

func (v *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ValidateAll validates every request and collects the failures.
// Validation messages of several requests are merged into one
// *ValidationError, numbered in argument order; a lone failure is returned
// unchanged. Any other error is aggregated alongside it, and errors.As still
// reaches every aggregated error.
func ValidateAll(vs ...Validatable) error {
	var verrs []*ValidationError
	var others []error
	for _, v := range vs {
		if v == nil {
			continue
		}
		err := v.Validate()
		if err == nil {
			continue
		}
		if verr, ok := err.(*ValidationError); ok {
			verrs = append(verrs, verr)
			continue
		}
		others = append(others, err)
	}

	var errs []error
	switch len(verrs) {
	case 0:
	case 1:
		errs = append(errs, verrs[0])
	default:
		merged := NewValidationError()
		for _, verr := range verrs {
			merged.errors = append(merged.errors, verr.errors...)
		}
		errs = append(errs, merged)
	}
	errs = append(errs, others...)

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return aggregateError{utilerrors.NewAggregate(errs)}
}

// aggregateError lets errors.As look into an apimachinery Aggregate.
type aggregateError struct {
	utilerrors.Aggregate
}

func (a aggregateError) Unwrap() []error {
	return a.Errors()
}
