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
	"github.com/benbjohnson/clock"
)

// DefaultConfig is the default configuration for the ledger.
var DefaultConfig = Config{
	Clock: clock.New(),
}

// Config is the configuration of the ledger.
type Config struct {
	Clock clock.Clock
}

// Option is an option to configure the ledger.
type Option func(*Config)

// WithClock injects the clock used to timestamp blocks at append time.
func WithClock(c clock.Clock) Option {
	return func(cfg *Config) {
		cfg.Clock = c
	}
}
