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

// Codec encodes payloads into the textual body representation of a block
// and back. Encoding must be deterministic for a given payload; decoding is
// its exact inverse.
type Codec interface {
	Encode(payload Payload) (string, error)
	Decode(body string) (Payload, error)
}

// Chain is the part of the ledger the admission protocol depends on.
type Chain interface {
	Append(block Block) (Block, error)
}
