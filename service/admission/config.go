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

// DefaultWindow is how long a challenge remains valid after it was issued.
// The numeric threshold is a compatibility contract: a submission whose
// challenge is exactly this old is already rejected.
const DefaultWindow = 300 * time.Second

// DefaultConfig is the default configuration for the admission protocol.
var DefaultConfig = Config{
	Window: DefaultWindow,
	Clock:  clock.New(),
}

// Config is the configuration of the admission protocol.
type Config struct {
	Window time.Duration
	Clock  clock.Clock
}
