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

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/optakt/star-registry/models/registry"
)

// Verifier checks that a signature over a message was produced by the
// holder of the claimed address.
type Verifier interface {
	Verify(address string, message string, signature string) error
}

// RecoveryVerifier verifies secp256k1 signatures by recovering the signer's
// public key from the signature over the Keccak-256 digest of the literal
// message, and comparing the derived address with the claimed one.
type RecoveryVerifier struct{}

// NewVerifier creates a new RecoveryVerifier.
func NewVerifier() *RecoveryVerifier {
	v := RecoveryVerifier{}
	return &v
}

// Verify implements the Verifier interface. Every way the check can fail
// surfaces as an InvalidSignature error.
func (v *RecoveryVerifier) Verify(address string, message string, signature string) error {

	sig, err := hexutil.Decode(signature)
	if err != nil {
		return registry.InvalidSignature{Address: address, Err: fmt.Errorf("could not decode signature: %w", err)}
	}
	if len(sig) != crypto.SignatureLength {
		return registry.InvalidSignature{Address: address, Err: fmt.Errorf("invalid signature length (have: %d, want: %d)", len(sig), crypto.SignatureLength)}
	}

	// Wallets encode the recovery identifier as 27/28, while the recovery
	// code expects 0/1.
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	hash := crypto.Keccak256Hash([]byte(message))
	pub, err := crypto.SigToPub(hash.Bytes(), sig)
	if err != nil {
		return registry.InvalidSignature{Address: address, Err: fmt.Errorf("could not recover public key: %w", err)}
	}

	recovered := crypto.PubkeyToAddress(*pub)
	if recovered != common.HexToAddress(address) {
		return registry.InvalidSignature{Address: address}
	}

	return nil
}
