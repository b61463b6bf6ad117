/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cbchmac

import (
	cbchmacapi "github.com/trustbloc/tokencrypto/crypto/cbchmac"
)

// ComputeMACFunc mocks MAC's ComputeMAC() function, it's useful for executing
// custom MAC computation in tests.
type ComputeMACFunc func(data []byte) ([]byte, error)

// MAC mock.
type MAC struct {
	ComputeMACValue []byte
	ComputeMACFn    ComputeMACFunc
	ComputeMACErr   error
	VerifyMACErr    error
}

// ComputeMAC returns a mocked value and a mocked error.
func (m *MAC) ComputeMAC(data []byte) ([]byte, error) {
	if m.ComputeMACFn != nil {
		return m.ComputeMACFn(data)
	}

	return m.ComputeMACValue, m.ComputeMACErr
}

// VerifyMAC returns a mocked error.
func (m *MAC) VerifyMAC(mac, data []byte) error {
	return m.VerifyMACErr
}

// MACProviderFactory mock. The OK fields report whether the factory customizes
// the requested combination; the Value fields are the capabilities handed out.
type MACProviderFactory struct {
	SignerValue   cbchmacapi.MAC
	SignerOK      bool
	VerifierValue cbchmacapi.MAC
	VerifierOK    bool

	SignerCalls   int
	VerifierCalls int
}

// TryCreateSigner returns the mocked signer capability.
func (f *MACProviderFactory) TryCreateSigner(macKey []byte, hash string) (cbchmacapi.MAC, bool) {
	f.SignerCalls++

	return f.SignerValue, f.SignerOK
}

// TryCreateVerifier returns the mocked verifier capability.
func (f *MACProviderFactory) TryCreateVerifier(macKey []byte, hash string) (cbchmacapi.MAC, bool) {
	f.VerifierCalls++

	return f.VerifierValue, f.VerifierOK
}
