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

package admission

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/optakt/star-registry/models/registry"
)

// challengeSuffix terminates every issued challenge message. Signatures are
// computed over the literal message, so the format must be preserved
// verbatim by any boundary that relays it.
const challengeSuffix = "starRegistry"

// Protocol admits star submissions into the ledger. It hands out
// time-bounded challenges and appends a block only once the submitter has
// proven control of the claimed address by signing the challenge within
// the window.
type Protocol struct {
	log      zerolog.Logger
	chain    registry.Chain
	codec    registry.Codec
	verify   Verifier
	validate *validator.Validate
	cfg      Config
}

// New creates a new admission protocol using the given dependencies.
func New(log zerolog.Logger, chain registry.Chain, codec registry.Codec, verify Verifier, options ...Option) *Protocol {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	p := Protocol{
		log:      log.With().Str("component", "admission").Logger(),
		chain:    chain,
		codec:    codec,
		verify:   verify,
		validate: validator.New(),
		cfg:      cfg,
	}

	return &p
}

// RequestChallenge builds the message the owner of the given address must
// sign to prove control of it. It is a pure function of the address and the
// current time.
func (p *Protocol) RequestChallenge(address string) string {
	return fmt.Sprintf("%s:%d:%s", address, p.cfg.Clock.Now().Unix(), challengeSuffix)
}

// Submit verifies a signed challenge and, on success, appends a block
// carrying the submitted star. Expiry is checked before the signature, so a
// stale challenge is rejected without paying for a key recovery.
func (p *Protocol) Submit(address string, message string, signature string, star registry.Star) (registry.Block, error) {

	parts := strings.Split(message, ":")
	if len(parts) < 2 {
		return registry.Block{}, registry.MalformedMessage{Message: message}
	}
	issued, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return registry.Block{}, registry.MalformedMessage{Message: message}
	}

	window := int64(p.cfg.Window / time.Second)
	elapsed := p.cfg.Clock.Now().Unix() - issued
	if elapsed >= window {
		return registry.Block{}, registry.ExpiredChallenge{Elapsed: elapsed, Window: window}
	}

	err = p.verify.Verify(address, message, signature)
	if err != nil {
		return registry.Block{}, fmt.Errorf("could not verify submission: %w", err)
	}

	err = p.validate.Struct(star)
	if err != nil {
		return registry.Block{}, registry.InvalidStar{Err: err}
	}

	body, err := p.codec.Encode(registry.Record{Owner: address, Star: star})
	if err != nil {
		return registry.Block{}, fmt.Errorf("could not encode star record: %w", err)
	}

	block, err := p.chain.Append(registry.NewBlock(body))
	if err != nil {
		return registry.Block{}, fmt.Errorf("could not append block: %w", err)
	}

	p.log.Info().
		Uint64("height", block.Height).
		Str("owner", address).
		Msg("star submission admitted")

	return block, nil
}
