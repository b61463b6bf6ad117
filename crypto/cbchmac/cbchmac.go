/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cbchmac

import (
	"crypto/aes"
	"crypto/hmac"
	"encoding/binary"
	"fmt"

	"github.com/google/tink/go/subtle/random"
	"github.com/hyperledger/aries-framework-go/component/log"

	"github.com/trustbloc/tokencrypto/crypto/cbchmac/subtle"
)

var logger = log.New("tokencrypto/cbchmac")

// Provider performs authenticated encryption under one composite CBC-HMAC key.
// The key is split at construction into a MAC half and a cipher half; the MAC
// capabilities are resolved once and cached. A Provider is immutable afterwards
// and safe for concurrent use.
//
// Scrubbing the composite key on disposal remains the caller's responsibility.
type Provider struct {
	alg      algorithmInfo
	cbc      *subtle.AESCBC
	signer   MAC
	verifier MAC
	label    string
}

type options struct {
	label   string
	factory MACProviderFactory
}

// Option configures provider construction.
type Option func(*options)

// WithContextLabel attaches an operator label to the provider. The label shows
// up in construction log output only; it never participates in key derivation
// or MAC input.
func WithContextLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithMACProviderFactory installs the factory consulted for custom MAC
// capabilities before the default HMAC is built.
func WithMACProviderFactory(factory MACProviderFactory) Option {
	return func(o *options) {
		o.factory = factory
	}
}

// New builds a provider for the given composite key and algorithm identifier.
// The key must carry at least the algorithm's required bits; surplus trailing
// bytes are ignored. All failures are ErrConfiguration under errors.Is.
func New(key []byte, algorithm string, opts ...Option) (*Provider, error) {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	alg, err := resolveAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}

	macKey, encKey, err := splitKey(key, alg)
	if err != nil {
		return nil, err
	}

	cbc, err := subtle.NewAESCBC(encKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	signer, verifier, err := resolveMACProviders(o.factory, macKey, alg)
	if err != nil {
		return nil, err
	}

	logger.Debugf("created CBC-HMAC provider [alg=%s context=%s]", alg.id, o.label)

	return &Provider{
		alg:      alg,
		cbc:      cbc,
		signer:   signer,
		verifier: verifier,
		label:    o.label,
	}, nil
}

// splitKey derives the MAC and cipher halves from the leading keySize bytes of
// the composite key: MAC key first, cipher key second, both keySize/2 bytes.
// Trailing bytes beyond keySize are discarded without error.
func splitKey(key []byte, alg algorithmInfo) (macKey, encKey []byte, err error) {
	if len(key) < alg.keySize {
		return nil, nil, fmt.Errorf("%w: %s requires %d bits, got %d",
			ErrInsufficientKeyMaterial, alg.id, alg.keySize*8, len(key)*8)
	}

	half := alg.keySize / 2

	macKey = make([]byte, half)
	copy(macKey, key[:half])

	encKey = make([]byte, half)
	copy(encKey, key[half:alg.keySize])

	return macKey, encKey, nil
}

// Encrypt encrypts plaintext and authenticates it together with aad. Both
// arguments must be non-empty. A fresh random IV is drawn for every call; the
// tag covers aad, IV and ciphertext.
func (p *Provider) Encrypt(plaintext, aad []byte) (*EncryptionResult, error) {
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("%w: plaintext", ErrMissingArgument)
	}

	if len(aad) == 0 {
		return nil, fmt.Errorf("%w: associated data", ErrMissingArgument)
	}

	iv := random.GetRandomBytes(aes.BlockSize)

	ciphertext, err := p.cbc.Encrypt(plaintext, iv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryption, err)
	}

	fullMAC, err := p.signer.ComputeMAC(macInput(aad, iv, ciphertext))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryption, err)
	}

	if len(fullMAC) < p.alg.tagSize {
		return nil, fmt.Errorf("%w: MAC output shorter than tag size", ErrEncryption)
	}

	return &EncryptionResult{
		Ciphertext: ciphertext,
		IV:         iv,
		Tag:        fullMAC[:p.alg.tagSize],
	}, nil
}

// Decrypt authenticates ciphertext, aad, iv and tag, then decrypts. Each
// argument must be non-empty. The tag is verified before any decryption runs;
// every failure past argument validation returns ErrDecryption unchanged, so
// tag, padding and cipher errors are indistinguishable.
func (p *Provider) Decrypt(ciphertext, aad, iv, tag []byte) ([]byte, error) {
	if len(ciphertext) == 0 {
		return nil, fmt.Errorf("%w: ciphertext", ErrMissingArgument)
	}

	if len(aad) == 0 {
		return nil, fmt.Errorf("%w: associated data", ErrMissingArgument)
	}

	if len(iv) == 0 {
		return nil, fmt.Errorf("%w: iv", ErrMissingArgument)
	}

	if len(tag) == 0 {
		return nil, fmt.Errorf("%w: tag", ErrMissingArgument)
	}

	expected, err := p.verifier.ComputeMAC(macInput(aad, iv, ciphertext))
	if err != nil || len(expected) < p.alg.tagSize {
		return nil, ErrDecryption
	}

	if !hmac.Equal(expected[:p.alg.tagSize], tag) {
		return nil, ErrDecryption
	}

	plaintext, err := p.cbc.Decrypt(ciphertext, iv)
	if err != nil {
		return nil, ErrDecryption
	}

	return plaintext, nil
}

// macInput assembles the authenticated input aad || iv || ciphertext || AL,
// where AL is the big-endian 64-bit length of aad in bits, per
// https://datatracker.ietf.org/doc/html/draft-mcgrew-aead-aes-cbc-hmac-sha2-05#section-2.4.
func macInput(aad, iv, ciphertext []byte) []byte {
	input := make([]byte, 0, len(aad)+len(iv)+len(ciphertext)+8)
	input = append(input, aad...)
	input = append(input, iv...)
	input = append(input, ciphertext...)

	var aadBits [8]byte

	binary.BigEndian.PutUint64(aadBits[:], uint64(len(aad))*8)

	return append(input, aadBits[:]...)
}
