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
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/optakt/star-registry/codec/hexjson"
	"github.com/optakt/star-registry/models/registry"
	"github.com/optakt/star-registry/testing/mocks"
)

func baselineLedger(t *testing.T) (*Ledger, *clock.Mock) {
	t.Helper()

	mock := clock.NewMock()
	mock.Set(time.Unix(1600000000, 0))

	l, err := New(mocks.NoopLogger, hexjson.NewCodec(), WithClock(mock))
	require.NoError(t, err)

	return l, mock
}

func appendRecord(t *testing.T, l *Ledger, owner string, index int) registry.Block {
	t.Helper()

	body, err := l.codec.Encode(registry.Record{Owner: owner, Star: mocks.GenericStar(index)})
	require.NoError(t, err)

	block, err := l.Append(registry.NewBlock(body))
	require.NoError(t, err)

	return block
}

func TestNew(t *testing.T) {
	l, _ := baselineLedger(t)

	t.Run("genesis exists at height zero", func(t *testing.T) {
		assert.Equal(t, uint64(0), l.Height())
		assert.Equal(t, 1, l.blocks.Len())
	})

	t.Run("genesis has no previous hash and a valid seal", func(t *testing.T) {
		genesis, err := l.ByHeight(0)
		require.NoError(t, err)

		assert.Empty(t, genesis.PreviousBlockHash)
		assert.True(t, genesis.Valid())
	})

	t.Run("genesis carries no payload", func(t *testing.T) {
		genesis, err := l.ByHeight(0)
		require.NoError(t, err)

		_, err = genesis.Payload(l.codec)
		assert.ErrorIs(t, err, registry.ErrNoPayload)
	})
}

func TestLedger_Append(t *testing.T) {
	l, mock := baselineLedger(t)

	const total = 5
	for i := 1; i <= total; i++ {
		mock.Add(time.Second)
		block := appendRecord(t, l, mocks.GenericAddress, i)

		assert.Equal(t, uint64(i), block.Height)
		assert.Equal(t, mock.Now().Unix(), block.Time)
		assert.True(t, block.Valid())
	}

	t.Run("every block links to its predecessor", func(t *testing.T) {
		for i := uint64(1); i <= total; i++ {
			block, err := l.ByHeight(i)
			require.NoError(t, err)

			previous, err := l.ByHeight(i - 1)
			require.NoError(t, err)

			assert.Equal(t, previous.Hash, block.PreviousBlockHash)
			assert.Equal(t, i, block.Height)
		}
	})

	t.Run("validation is idempotent", func(t *testing.T) {
		block, err := l.ByHeight(total)
		require.NoError(t, err)

		before := block
		assert.True(t, block.Valid())
		assert.True(t, block.Valid())
		assert.Equal(t, before, block)
	})

	t.Run("stored blocks are unaffected by mutating returned copies", func(t *testing.T) {
		block, err := l.ByHeight(1)
		require.NoError(t, err)

		block.Body = "deadbeef"

		stored, err := l.ByHeight(1)
		require.NoError(t, err)
		assert.True(t, stored.Valid())
	})
}

func TestLedger_ConcurrentAppend(t *testing.T) {
	l, _ := baselineLedger(t)

	const workers = 32

	var group errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		group.Go(func() error {
			body, err := l.codec.Encode(registry.Record{Owner: mocks.GenericAddress, Star: mocks.GenericStar(i)})
			if err != nil {
				return err
			}
			_, err = l.Append(registry.NewBlock(body))
			return err
		})
	}
	require.NoError(t, group.Wait())

	// All appends must have produced distinct, contiguous heights with
	// intact linkage.
	assert.Equal(t, uint64(workers), l.Height())
	assert.Empty(t, l.Faults())
}

func TestLedger_ByHash(t *testing.T) {
	l, _ := baselineLedger(t)
	block := appendRecord(t, l, mocks.GenericAddress, 1)

	t.Run("nominal case", func(t *testing.T) {
		found, err := l.ByHash(block.Hash)

		require.NoError(t, err)
		assert.Equal(t, block, found)
	})

	t.Run("unknown hash", func(t *testing.T) {
		_, err := l.ByHash("4242424242424242424242424242424242424242424242424242424242424242")

		assert.ErrorIs(t, err, registry.ErrNotFound)
	})
}

func TestLedger_ByHeight(t *testing.T) {
	l, _ := baselineLedger(t)
	block := appendRecord(t, l, mocks.GenericAddress, 1)

	t.Run("nominal case", func(t *testing.T) {
		found, err := l.ByHeight(1)

		require.NoError(t, err)
		assert.Equal(t, block, found)
	})

	t.Run("height out of range", func(t *testing.T) {
		_, err := l.ByHeight(2)

		assert.ErrorIs(t, err, registry.ErrNotFound)
	})
}

func TestLedger_StarsByOwner(t *testing.T) {

	const other = "0xAb8483F64d9C6d1EcF9b849Ae677dD3315835cb2"

	t.Run("returns the owner's stars in chain order, genesis excluded", func(t *testing.T) {
		l, _ := baselineLedger(t)

		appendRecord(t, l, mocks.GenericAddress, 1)
		appendRecord(t, l, mocks.GenericAddress, 2)
		appendRecord(t, l, other, 3)
		appendRecord(t, l, mocks.GenericAddress, 4)

		stars := l.StarsByOwner(mocks.GenericAddress)

		require.Len(t, stars, 3)
		assert.Equal(t, mocks.GenericStar(1), stars[0])
		assert.Equal(t, mocks.GenericStar(2), stars[1])
		assert.Equal(t, mocks.GenericStar(4), stars[2])
	})

	t.Run("unknown owner has no stars", func(t *testing.T) {
		l, _ := baselineLedger(t)
		appendRecord(t, l, mocks.GenericAddress, 1)

		assert.Empty(t, l.StarsByOwner(other))
	})

	t.Run("skips blocks with undecodable bodies without aborting", func(t *testing.T) {
		l, _ := baselineLedger(t)

		appendRecord(t, l, mocks.GenericAddress, 1)
		appendRecord(t, l, mocks.GenericAddress, 2)
		appendRecord(t, l, mocks.GenericAddress, 3)

		corrupt := l.blocks.At(2).(registry.Block)
		corrupt.Body = "not hex"
		l.blocks.Set(2, corrupt)

		stars := l.StarsByOwner(mocks.GenericAddress)

		require.Len(t, stars, 2)
		assert.Equal(t, mocks.GenericStar(1), stars[0])
		assert.Equal(t, mocks.GenericStar(3), stars[1])
	})
}

func TestLedger_Faults(t *testing.T) {

	t.Run("intact chain has no faults", func(t *testing.T) {
		l, _ := baselineLedger(t)
		for i := 1; i <= 4; i++ {
			appendRecord(t, l, mocks.GenericAddress, i)
		}

		assert.Empty(t, l.Faults())
	})

	t.Run("tampered body yields hash mismatch and broken link downstream", func(t *testing.T) {
		l, _ := baselineLedger(t)
		for i := 1; i <= 4; i++ {
			appendRecord(t, l, mocks.GenericAddress, i)
		}

		tampered := l.blocks.At(2).(registry.Block)
		tampered.Body = "deadbeef"
		l.blocks.Set(2, tampered)

		faults := l.Faults()

		assert.Contains(t, faults, registry.Fault{Height: 2, Reason: registry.FaultHashMismatch})
		assert.NotContains(t, faults, registry.Fault{Height: 3, Reason: registry.FaultBrokenLink})
		assert.Len(t, faults, 1)
	})

	t.Run("re-sealed tampered block breaks the link to its successor", func(t *testing.T) {
		l, _ := baselineLedger(t)
		for i := 1; i <= 4; i++ {
			appendRecord(t, l, mocks.GenericAddress, i)
		}

		// Re-sealing hides the tamper from the block's own check but not
		// from the linkage check of the block that follows it.
		tampered := l.blocks.At(2).(registry.Block)
		tampered.Body = "deadbeef"
		tampered.Hash = tampered.Digest()
		l.blocks.Set(2, tampered)

		faults := l.Faults()

		assert.Contains(t, faults, registry.Fault{Height: 3, Reason: registry.FaultBrokenLink})
		assert.NotContains(t, faults, registry.Fault{Height: 2, Reason: registry.FaultHashMismatch})
		assert.Len(t, faults, 1)
	})

	t.Run("scan covers the whole chain instead of stopping early", func(t *testing.T) {
		l, _ := baselineLedger(t)
		for i := 1; i <= 4; i++ {
			appendRecord(t, l, mocks.GenericAddress, i)
		}

		for _, height := range []int{1, 3} {
			tampered := l.blocks.At(height).(registry.Block)
			tampered.Body = fmt.Sprintf("deadbeef%d", height)
			l.blocks.Set(height, tampered)
		}

		faults := l.Faults()

		assert.Contains(t, faults, registry.Fault{Height: 1, Reason: registry.FaultHashMismatch})
		assert.Contains(t, faults, registry.Fault{Height: 3, Reason: registry.FaultHashMismatch})
	})
}
