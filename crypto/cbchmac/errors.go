/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cbchmac

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned by New for any construction failure. It is
	// never returned by Encrypt or Decrypt.
	ErrConfiguration = errors.New("cbc_hmac: invalid configuration")

	// ErrAlgorithmNotSupported is returned by New for an unknown algorithm
	// identifier. Matches ErrConfiguration under errors.Is.
	ErrAlgorithmNotSupported = fmt.Errorf("%w: algorithm not supported", ErrConfiguration)

	// ErrInsufficientKeyMaterial is returned by New when the composite key is
	// shorter than the algorithm requires. Matches ErrConfiguration under errors.Is.
	ErrInsufficientKeyMaterial = fmt.Errorf("%w: insufficient key material", ErrConfiguration)

	// ErrProviderCreation is returned by New when a MACProviderFactory customizes
	// the requested key/hash combination but yields no usable capability. Matches
	// ErrConfiguration under errors.Is.
	ErrProviderCreation = fmt.Errorf("%w: MAC provider creation failed", ErrConfiguration)

	// ErrMissingArgument is returned by Encrypt and Decrypt when a required byte
	// sequence is nil or empty, before any cryptography runs.
	ErrMissingArgument = errors.New("cbc_hmac: required argument is nil or empty")

	// ErrEncryption is returned by Encrypt when an underlying primitive fails.
	ErrEncryption = errors.New("cbc_hmac: encryption failed")

	// ErrDecryption is the single decrypt failure. It is returned unwrapped for a
	// tag mismatch, invalid padding and every cipher-layer error, so the failure
	// modes are indistinguishable to the caller.
	ErrDecryption = errors.New("cbc_hmac: decryption failed")
)
