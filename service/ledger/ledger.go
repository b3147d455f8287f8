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

package ledger

import (
	"fmt"
	"sync"

	"github.com/gammazero/deque"
	"github.com/rs/zerolog"

	"github.com/optakt/star-registry/models/registry"
)

// Ledger is the single-writer, append-only chain of blocks. It seeds its
// genesis block during construction, so callers never observe an empty
// chain, and it grows one block at a time under an exclusive lock, so
// linkage is always derived from a settled height. Blocks go in and out by
// value; the stored sequence is never aliased.
type Ledger struct {
	log   zerolog.Logger
	codec registry.Codec
	cfg   Config

	mutex  sync.RWMutex
	blocks *deque.Deque
	byHash map[string]uint64
}

// New creates a ledger and appends the genesis block before returning.
func New(log zerolog.Logger, codec registry.Codec, options ...Option) (*Ledger, error) {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	l := Ledger{
		log:    log.With().Str("component", "ledger").Logger(),
		codec:  codec,
		cfg:    cfg,
		blocks: deque.New(),
		byHash: make(map[string]uint64),
	}

	body, err := codec.Encode(registry.Genesis{Data: registry.GenesisData})
	if err != nil {
		return nil, fmt.Errorf("could not encode genesis payload: %w", err)
	}

	_, err = l.Append(registry.NewBlock(body))
	if err != nil {
		return nil, fmt.Errorf("could not append genesis block: %w", err)
	}

	return &l, nil
}

// Append stamps the linkage fields of the given block, seals its hash and
// pushes it onto the chain. The full read-height, stamp, digest and push
// sequence holds the write lock, so two concurrent appends can never derive
// the same height or inconsistent linkage. It returns the sealed block as
// stored.
func (l *Ledger) Append(block registry.Block) (registry.Block, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	block.Time = l.cfg.Clock.Now().Unix()
	if l.blocks.Len() == 0 {
		block.Height = 0
		block.PreviousBlockHash = ""
	} else {
		previous := l.blocks.Back().(registry.Block)
		block.Height = previous.Height + 1
		block.PreviousBlockHash = previous.Hash
	}
	block.Hash = block.Digest()

	l.blocks.PushBack(block)
	l.byHash[block.Hash] = block.Height

	l.log.Debug().
		Uint64("height", block.Height).
		Str("hash", block.Hash).
		Msg("block appended")

	return block, nil
}

// Height returns the height of the latest block.
func (l *Ledger) Height() uint64 {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.blocks.Back().(registry.Block).Height
}

// ByHash looks up a block by exact hash equality.
func (l *Ledger) ByHash(hash string) (registry.Block, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	height, ok := l.byHash[hash]
	if !ok {
		return registry.Block{}, registry.ErrNotFound
	}

	return l.blocks.At(int(height)).(registry.Block), nil
}

// ByHeight looks up a block by its position in the chain.
func (l *Ledger) ByHeight(height uint64) (registry.Block, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	if height >= uint64(l.blocks.Len()) {
		return registry.Block{}, registry.ErrNotFound
	}

	return l.blocks.At(int(height)).(registry.Block), nil
}

// StarsByOwner collects the stars of every record owned by the given
// address, in chain order, with genesis excluded. A block whose body can no
// longer be decoded is skipped rather than aborting the scan, so one
// corrupt record cannot hide legitimate results; each skip is logged as a
// diagnostic.
func (l *Ledger) StarsByOwner(address string) []registry.Star {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	var stars []registry.Star
	for i := 1; i < l.blocks.Len(); i++ {
		block := l.blocks.At(i).(registry.Block)

		payload, err := l.codec.Decode(block.Body)
		if err != nil {
			l.log.Warn().
				Uint64("height", block.Height).
				Err(err).
				Msg("skipping block with undecodable body")
			continue
		}

		record, ok := payload.(registry.Record)
		if !ok || record.Owner != address {
			continue
		}

		stars = append(stars, record.Star)
	}

	return stars
}

// Faults runs the full-chain diagnostic scan: every block is re-verified
// against its own hash and against the hash of its predecessor. The scan
// never stops at the first problem; the returned list is empty when the
// chain is intact.
func (l *Ledger) Faults() registry.Faults {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	faults := registry.Faults{}
	for i := 0; i < l.blocks.Len(); i++ {
		block := l.blocks.At(i).(registry.Block)

		if !block.Valid() {
			faults = append(faults, registry.Fault{Height: block.Height, Reason: registry.FaultHashMismatch})
		}

		if i == 0 {
			if block.PreviousBlockHash != "" {
				faults = append(faults, registry.Fault{Height: block.Height, Reason: registry.FaultBrokenLink})
			}
			continue
		}

		previous := l.blocks.At(i - 1).(registry.Block)
		if block.PreviousBlockHash != previous.Hash {
			faults = append(faults, registry.Fault{Height: block.Height, Reason: registry.FaultBrokenLink})
		}
	}

	return faults
}
