/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cbchmac

import (
	"fmt"

	macsubtle "github.com/google/tink/go/mac/subtle"
)

// MAC computes and verifies message authentication codes over the provider's MAC
// input. Implementations must be safe for concurrent use. Tink's mac/subtle.HMAC
// satisfies the interface and is the default capability.
type MAC interface {
	// ComputeMAC computes a MAC over data.
	ComputeMAC(data []byte) ([]byte, error)

	// VerifyMAC returns nil if mac is a valid MAC over data.
	VerifyMAC(mac, data []byte) error
}

// MACProviderFactory is the extension seam for deployments that back MAC
// computation with hardware or policy engines. The boolean result reports
// whether the factory customizes the given key/hash combination: a factory that
// does not customize it (or a nil factory) silently falls back to the default
// HMAC, while a factory that customizes it but returns a nil capability fails
// provider construction with ErrProviderCreation.
//
// hash is the name of the descriptor's hash function, "SHA256" or "SHA512".
type MACProviderFactory interface {
	TryCreateSigner(macKey []byte, hash string) (MAC, bool)
	TryCreateVerifier(macKey []byte, hash string) (MAC, bool)
}

// resolveMACProviders binds the sign and verify capabilities for macKey. It runs
// once, at provider construction; both capabilities are reused for the
// provider's lifetime.
func resolveMACProviders(factory MACProviderFactory, macKey []byte, alg algorithmInfo) (signer, verifier MAC, err error) {
	if factory != nil {
		if m, ok := factory.TryCreateSigner(macKey, alg.hash); ok {
			if m == nil {
				return nil, nil, fmt.Errorf("%w: factory customizes %s but returned no signer", ErrProviderCreation, alg.id)
			}

			signer = m
		}

		if m, ok := factory.TryCreateVerifier(macKey, alg.hash); ok {
			if m == nil {
				return nil, nil, fmt.Errorf("%w: factory customizes %s but returned no verifier", ErrProviderCreation, alg.id)
			}

			verifier = m
		}
	}

	if signer != nil && verifier != nil {
		return signer, verifier, nil
	}

	defaultMAC, err := macsubtle.NewHMAC(alg.hash, macKey, uint32(alg.tagSize))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrProviderCreation, err)
	}

	if signer == nil && verifier == nil {
		logger.Debugf("no custom MAC provider for %s, using default HMAC-%s", alg.id, alg.hash)
	}

	if signer == nil {
		signer = defaultMAC
	}

	if verifier == nil {
		verifier = defaultMAC
	}

	return signer, verifier, nil
}
