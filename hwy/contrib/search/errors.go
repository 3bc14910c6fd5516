// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import (
	"errors"
	"fmt"
)

var (
	// ErrArgumentMismatch is the class of errors for inconsistent arguments.
	ErrArgumentMismatch = errors.New("search: argument mismatch")

	// ErrNoOrdering is returned for the zero Ordering.
	ErrNoOrdering = errors.New("search: ordering is not set")

	// ErrNilSequence is returned when v or x is nil.
	ErrNilSequence = fmt.Errorf("%w: nil sequence", ErrArgumentMismatch)
)

// ErrLengthMismatch reports a result buffer whose length differs from the
// query batch. It matches ErrArgumentMismatch with errors.Is.
type ErrLengthMismatch struct {
	Results int
	Queries int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("search: result buffer has %d elements, query batch has %d", e.Results, e.Queries)
}

func (e *ErrLengthMismatch) Unwrap() error { return ErrArgumentMismatch }
