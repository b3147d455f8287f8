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

package hexjson

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/optakt/star-registry/models/registry"
)

// Codec translates payloads into the hex-encoded canonical JSON used as
// block body and back. The textual form is part of the external contract:
// a body transferred across processes must be preserved verbatim, or hash
// re-verification of the block fails.
type Codec struct{}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	c := Codec{}
	return &c
}

// genesisBody and recordBody fix the canonical field order of the two
// payload shapes on the wire.
type genesisBody struct {
	Data string `json:"data"`
}

type recordBody struct {
	Owner string        `json:"owner"`
	Star  registry.Star `json:"star"`
}

// envelope probes decoded JSON for the variant shape without committing to
// either one.
type envelope struct {
	Data  *string        `json:"data"`
	Owner *string        `json:"owner"`
	Star  *registry.Star `json:"star"`
}

// Encode serializes the payload into its canonical JSON shape and returns
// the hex encoding of that text. The output is deterministic for a given
// payload.
func (c *Codec) Encode(payload registry.Payload) (string, error) {

	var value interface{}
	switch p := payload.(type) {
	case registry.Genesis:
		value = genesisBody{Data: p.Data}
	case registry.Record:
		value = recordBody{Owner: p.Owner, Star: p.Star}
	default:
		return "", fmt.Errorf("unsupported payload type (%T)", payload)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("could not encode payload: %w", err)
	}

	return hex.EncodeToString(data), nil
}

// Decode is the exact inverse of Encode. It fails with an InvalidBody error
// on broken hex, malformed JSON, or content matching neither payload shape.
func (c *Codec) Decode(body string) (registry.Payload, error) {

	data, err := hex.DecodeString(body)
	if err != nil {
		return nil, registry.InvalidBody{Err: fmt.Errorf("could not decode body hex: %w", err)}
	}

	var env envelope
	err = json.Unmarshal(data, &env)
	if err != nil {
		return nil, registry.InvalidBody{Err: fmt.Errorf("could not decode body content: %w", err)}
	}

	switch {
	case env.Data != nil:
		return registry.Genesis{Data: *env.Data}, nil
	case env.Owner != nil && env.Star != nil:
		return registry.Record{Owner: *env.Owner, Star: *env.Star}, nil
	default:
		return nil, registry.InvalidBody{Err: fmt.Errorf("body content matches no payload shape")}
	}
}
