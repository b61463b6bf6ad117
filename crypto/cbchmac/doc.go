/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cbchmac implements the JOSE AES-CBC-HMAC content-encryption algorithms
// (A128CBC-HS256 and A256CBC-HS512): a single composite key split into a MAC half
// and a cipher half, encrypt-then-MAC ordering, and truncated HMAC tags, as
// defined by https://datatracker.ietf.org/doc/html/rfc7518#section-5.2.
//
// The package is the content-encryption primitive consumed by an envelope layer
// (JWE/JWT framing); it owns no serialization format of its own. Providers are
// immutable after construction and safe for concurrent use.
package cbchmac
