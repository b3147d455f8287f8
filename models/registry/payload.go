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

// GenesisData is the marker value carried by the body of the genesis block.
const GenesisData = "Genesis Block"

// Payload is the decoded content of a block body. It is a closed sum of two
// variants: the genesis marker, or a star record bound to a verified owner.
type Payload interface {
	isPayload()
}

// Genesis is the payload of the ledger's first, synthetic block. It carries
// no caller data beyond the marker.
type Genesis struct {
	Data string `json:"data"`
}

func (Genesis) isPayload() {}

// Record is the payload of every admitted block: the registered star and
// the address that proved ownership at submission time.
type Record struct {
	Owner string `json:"owner"`
	Star  Star   `json:"star"`
}

func (Record) isPayload() {}

// Star describes a registered star. Coordinates use the usual sexagesimal
// notation; the story is a short free-text dedication, capped so a single
// record cannot bloat the chain.
type Star struct {
	Dec           string `json:"dec" validate:"required"`
	RA            string `json:"ra" validate:"required"`
	Story         string `json:"story" validate:"required,max=500"`
	Magnitude     string `json:"mag,omitempty" validate:"omitempty,max=16"`
	Constellation string `json:"con,omitempty" validate:"omitempty,max=32"`
}
