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
	"time"

	"github.com/benbjohnson/clock"
)

// Option is an option to configure the admission protocol.
type Option func(*Config)

// WithWindow sets the validity window of issued challenges.
func WithWindow(window time.Duration) Option {
	return func(cfg *Config) {
		cfg.Window = window
	}
}

// WithClock injects the clock used to issue challenges and measure their
// age.
func WithClock(c clock.Clock) Option {
	return func(cfg *Config) {
		cfg.Clock = c
	}
}
