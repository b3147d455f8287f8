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

type Codec struct {
	EncodeFunc func(payload registry.Payload) (string, error)
	DecodeFunc func(body string) (registry.Payload, error)
}

func BaselineCodec(t *testing.T) *Codec {
	t.Helper()

	c := Codec{
		EncodeFunc: func(registry.Payload) (string, error) {
			return GenericBody, nil
		},
		DecodeFunc: func(string) (registry.Payload, error) {
			return GenericRecord(0), nil
		},
	}

	return &c
}

func (c *Codec) Encode(payload registry.Payload) (string, error) {
	return c.EncodeFunc(payload)
}

func (c *Codec) Decode(body string) (registry.Payload, error) {
	return c.DecodeFunc(body)
}
