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

package mocks

import (
	"testing"

	"github.com/optakt/star-registry/models/registry"
)

type Ledger struct {
	HeightFunc       func() uint64
	ByHashFunc       func(hash string) (registry.Block, error)
	ByHeightFunc     func(height uint64) (registry.Block, error)
	StarsByOwnerFunc func(address string) []registry.Star
	FaultsFunc       func() registry.Faults
}

func BaselineLedger(t *testing.T) *Ledger {
	t.Helper()

	l := Ledger{
		HeightFunc: func() uint64 {
			return GenericHeight
		},
		ByHashFunc: func(string) (registry.Block, error) {
			return GenericBlock(GenericHeight), nil
		},
		ByHeightFunc: func(height uint64) (registry.Block, error) {
			return GenericBlock(height), nil
		},
		StarsByOwnerFunc: func(string) []registry.Star {
			return []registry.Star{GenericStar(0)}
		},
		FaultsFunc: func() registry.Faults {
			return registry.Faults{}
		},
	}

	return &l
}

func (l *Ledger) Height() uint64 {
	return l.HeightFunc()
}

func (l *Ledger) ByHash(hash string) (registry.Block, error) {
	return l.ByHashFunc(hash)
}

func (l *Ledger) ByHeight(height uint64) (registry.Block, error) {
	return l.ByHeightFunc(height)
}

func (l *Ledger) StarsByOwner(address string) []registry.Star {
	return l.StarsByOwnerFunc(address)
}

func (l *Ledger) Faults() registry.Faults {
	return l.FaultsFunc()
}
