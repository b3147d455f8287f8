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

package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by ledger lookups when no block matches.
	ErrNotFound = errors.New("block not found")

	// ErrNoPayload is returned when decoding the payload of the genesis
	// block, which carries no caller data.
	ErrNoPayload = errors.New("payload not available")
)

// InvalidBody indicates a block body that could not be decoded, either
// because of a broken encoding or malformed content.
type InvalidBody struct {
	Err error
}

func (i InvalidBody) Error() string {
	return fmt.Sprintf("invalid block body: %s", i.Err)
}

func (i InvalidBody) Unwrap() error {
	return i.Err
}

// MalformedMessage indicates a challenge message without a parsable
// timestamp segment.
type MalformedMessage struct {
	Message string
}

func (m MalformedMessage) Error() string {
	return fmt.Sprintf("malformed challenge message (message: %s)", m.Message)
}

// ExpiredChallenge indicates a submission whose challenge fell outside the
// admission window, regardless of signature validity.
type ExpiredChallenge struct {
	Elapsed int64
	Window  int64
}

func (e ExpiredChallenge) Error() string {
	return fmt.Sprintf("challenge expired (elapsed: %d, window: %d)", e.Elapsed, e.Window)
}

// InvalidSignature indicates a signature that does not prove control of the
// claimed address.
type InvalidSignature struct {
	Address string
	Err     error
}

func (i InvalidSignature) Error() string {
	if i.Err != nil {
		return fmt.Sprintf("invalid signature (address: %s): %s", i.Address, i.Err)
	}
	return fmt.Sprintf("invalid signature (address: %s)", i.Address)
}

func (i InvalidSignature) Unwrap() error {
	return i.Err
}

// InvalidStar indicates a star payload that failed shape validation.
type InvalidStar struct {
	Err error
}

func (i InvalidStar) Error() string {
	return fmt.Sprintf("invalid star payload: %s", i.Err)
}

func (i InvalidStar) Unwrap() error {
	return i.Err
}
