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
	"fmt"
	"testing"

	"github.com/optakt/star-registry/models/registry"
)

type Protocol struct {
	RequestChallengeFunc func(address string) string
	SubmitFunc           func(address string, message string, signature string, star registry.Star) (registry.Block, error)
}

func BaselineProtocol(t *testing.T) *Protocol {
	t.Helper()

	p := Protocol{
		RequestChallengeFunc: func(address string) string {
			return fmt.Sprintf("%s:1600000000:starRegistry", address)
		},
		SubmitFunc: func(string, string, string, registry.Star) (registry.Block, error) {
			return GenericBlock(GenericHeight), nil
		},
	}

	return &p
}

func (p *Protocol) RequestChallenge(address string) string {
	return p.RequestChallengeFunc(address)
}

func (p *Protocol) Submit(address string, message string, signature string, star registry.Star) (registry.Block, error) {
	return p.SubmitFunc(address, message, signature, star)
}
