// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package registry

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// FaultReason tags what a chain validation fault detected.
type FaultReason string

const (
	// FaultHashMismatch marks a block whose stored hash no longer matches
	// its contents.
	FaultHashMismatch FaultReason = "hash_mismatch"

	// FaultBrokenLink marks a block whose previous-hash reference does not
	// match the hash of the preceding block.
	FaultBrokenLink FaultReason = "broken_link"
)

// Fault is one diagnostic from a full-chain validation scan. Faults are
// collected values, never raised mid-scan.
type Fault struct {
	Height uint64      `json:"height"`
	Reason FaultReason `json:"reason"`
}

// Faults is the complete result of a chain scan; an empty list means the
// chain is intact.
type Faults []Fault

// Err folds the fault list into a single aggregated error, nil when the
// chain is intact.
func (f Faults) Err() error {
	var merr *multierror.Error
	for _, fault := range f {
		merr = multierror.Append(merr, fmt.Errorf("chain fault (height: %d, reason: %s)", fault.Height, fault.Reason))
	}
	return merr.ErrorOrNil()
}
