/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cbchmac

import (
	"fmt"

	"github.com/trustbloc/tokencrypto/crypto/cbchmac/subtle"
)

const (
	// AES128CBCHMACSHA256 is the JOSE A128CBC-HS256 algorithm: AES-128-CBC with
	// an HMAC-SHA-256 tag truncated to 16 bytes, requiring a 256-bit composite key.
	AES128CBCHMACSHA256 = "A128CBC-HS256"

	// AES256CBCHMACSHA512 is the JOSE A256CBC-HS512 algorithm: AES-256-CBC with
	// an HMAC-SHA-512 tag truncated to 32 bytes, requiring a 512-bit composite key.
	AES256CBCHMACSHA512 = "A256CBC-HS512"
)

// algorithmInfo describes one supported CBC-HMAC algorithm. The parameters follow
// https://datatracker.ietf.org/doc/html/draft-mcgrew-aead-aes-cbc-hmac-sha2-05#section-2.8.
type algorithmInfo struct {
	id         string
	hash       string // tink hash name, drives the default HMAC capability
	encKeySize int    // AES key size in bytes
	keySize    int    // composite key bytes consumed: MAC half followed by AES half
	tagSize    int    // truncated HMAC tag size in bytes, half the hash output
}

var algorithms = map[string]algorithmInfo{
	AES128CBCHMACSHA256: {
		id:         AES128CBCHMACSHA256,
		hash:       "SHA256",
		encKeySize: subtle.AES128Size,
		keySize:    2 * subtle.AES128Size,
		tagSize:    16,
	},
	AES256CBCHMACSHA512: {
		id:         AES256CBCHMACSHA512,
		hash:       "SHA512",
		encKeySize: subtle.AES256Size,
		keySize:    2 * subtle.AES256Size,
		tagSize:    32,
	},
}

func resolveAlgorithm(id string) (algorithmInfo, error) {
	info, ok := algorithms[id]
	if !ok {
		return algorithmInfo{}, fmt.Errorf("%w: %q", ErrAlgorithmNotSupported, id)
	}

	return info, nil
}
