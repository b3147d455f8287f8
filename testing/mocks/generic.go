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
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/optakt/star-registry/models/registry"
)

// Global variables that can be used for testing. They are non-nil valid
// values for the types commonly needed to test registry components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericHeight = uint64(42)

	GenericAddress = "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"

	GenericBody = "74657374"
)

// GenericStar returns a valid star fixture, distinguishable by index.
func GenericStar(index int) registry.Star {
	return registry.Star{
		Dec:   fmt.Sprintf("68° 52' 56.%d", index),
		RA:    fmt.Sprintf("16h 29m %ds", index),
		Story: fmt.Sprintf("story %d", index),
	}
}

// GenericRecord returns a star record fixture owned by the generic address.
func GenericRecord(index int) registry.Record {
	return registry.Record{
		Owner: GenericAddress,
		Star:  GenericStar(index),
	}
}

// GenericBlock returns a sealed block fixture. It is internally consistent
// but not linked to any chain.
func GenericBlock(height uint64) registry.Block {
	block := registry.Block{
		Height: height,
		Body:   GenericBody,
		Time:   1600000000 + int64(height),
	}
	block.Hash = block.Digest()
	return block
}
