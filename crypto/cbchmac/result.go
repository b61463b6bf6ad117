/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cbchmac

// EncryptionResult bundles the outputs of a single Encrypt call. An envelope
// layer serializes the three parts; Decrypt consumes them unchanged. Callers
// must not mutate the slices.
type EncryptionResult struct {
	Ciphertext []byte
	IV         []byte
	Tag        []byte
}
