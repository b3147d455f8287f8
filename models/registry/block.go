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
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Block is one entry of the hash-linked ledger. A freshly created block
// only carries its body; the ledger stamps the linkage fields and seals the
// hash inside its append critical section. Blocks are passed by value, so
// callers never hold an alias into the stored chain.
type Block struct {
	Hash              string `json:"hash"`
	Height            uint64 `json:"height"`
	Body              string `json:"body"`
	Time              int64  `json:"time"`
	PreviousBlockHash string `json:"previousBlockHash,omitempty"`
}

// NewBlock wraps an encoded body into an unsealed block.
func NewBlock(body string) Block {
	b := Block{
		Body: body,
	}
	return b
}

// Digest computes the block's content digest over the canonical JSON form
// with the hash field treated as absent, regardless of the stored hash. The
// same function seals a block at append time and re-verifies it later. It
// operates on a copy, so a sealed block is never observed with a cleared
// hash.
func (b Block) Digest() string {
	masked := b
	masked.Hash = ""

	// Marshalling a flat struct of scalar fields cannot fail.
	data, _ := json.Marshal(masked)

	digest := sha256.Sum256(data)

	return hex.EncodeToString(digest[:])
}

// Valid reports whether the stored hash still matches the block's contents.
// A mismatch is a normal outcome of the check, not a fault.
func (b Block) Valid() bool {
	return b.Hash == b.Digest()
}

// Payload decodes the block body with the given codec. It returns
// ErrNoPayload for the genesis block, which carries no caller data.
func (b Block) Payload(codec Codec) (Payload, error) {

	payload, err := codec.Decode(b.Body)
	if err != nil {
		return nil, fmt.Errorf("could not decode block body: %w", err)
	}

	_, genesis := payload.(Genesis)
	if genesis {
		return nil, ErrNoPayload
	}

	return payload, nil
}
