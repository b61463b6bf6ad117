/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package subtle

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

// AESCBC is an AES-CBC cipher with a caller-supplied IV and PKCS#7 padding.
// The CBC-HMAC provider owns IV generation so it can authenticate the IV before
// any decryption happens.
type AESCBC struct {
	Key []byte
}

// NewAESCBC returns an AES CBC cipher instance.
// The key argument should be the AES key, either 16, 24 or 32 bytes to select
// AES-128, AES-192 or AES-256.
func NewAESCBC(key []byte) (*AESCBC, error) {
	if err := ValidateAESKeySize(uint32(len(key))); err != nil {
		return nil, fmt.Errorf("aes_cbc: NewAESCBC() %w", err)
	}

	return &AESCBC{Key: key}, nil
}

// Encrypt encrypts plaintext under iv using AES in CBC mode. The plaintext is
// padded to a block multiple with PKCS#7. iv must be aes.BlockSize bytes long
// and fresh for every call.
func (a *AESCBC) Encrypt(plaintext, iv []byte) ([]byte, error) {
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("aes_cbc: invalid iv size; want %d, got %d", aes.BlockSize, len(iv))
	}

	if len(plaintext) > maxInt-aes.BlockSize {
		return nil, errors.New("aes_cbc: plaintext too long")
	}

	block, err := a.newCipher()
	if err != nil {
		return nil, fmt.Errorf("aes_cbc: Encrypt() %w", err)
	}

	ciphertext := Pad(plaintext, len(plaintext), aes.BlockSize)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, ciphertext)

	return ciphertext, nil
}

// Decrypt decrypts ciphertext under iv, then validates and strips the PKCS#7
// padding.
func (a *AESCBC) Decrypt(ciphertext, iv []byte) ([]byte, error) {
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("aes_cbc: invalid iv size; want %d, got %d", aes.BlockSize, len(iv))
	}

	block, err := a.newCipher()
	if err != nil {
		return nil, fmt.Errorf("aes_cbc: Decrypt() %w", err)
	}

	if len(ciphertext) < aes.BlockSize {
		return nil, errors.New("aes_cbc: ciphertext too short")
	}

	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, errors.New("aes_cbc: invalid ciphertext padding")
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	if err := validatePadding(plaintext, aes.BlockSize); err != nil {
		return nil, err
	}

	return Unpad(plaintext), nil
}

func (a *AESCBC) newCipher() (cipher.Block, error) {
	block, err := aes.NewCipher(a.Key)
	if err != nil {
		return nil, fmt.Errorf("aes_cbc: failed to create block cipher, error: %v", err)
	}

	return block, nil
}

// Pad returns text padded to a multiple of blockSize with PKCS#7: between 1 and
// blockSize bytes are appended, each holding the pad count. originalTextSize is
// the number of leading bytes of text to keep.
func Pad(text []byte, originalTextSize, blockSize int) []byte {
	padAmount := blockSize - (originalTextSize % blockSize)

	padded := make([]byte, originalTextSize+padAmount)
	copy(padded, text[:originalTextSize])

	for i := originalTextSize; i < len(padded); i++ {
		padded[i] = byte(padAmount)
	}

	return padded
}

// Unpad strips the PKCS#7 padding appended by Pad. The padding must have been
// validated first.
func Unpad(text []byte) []byte {
	padAmount := int(text[len(text)-1])

	return text[:len(text)-padAmount]
}

func validatePadding(text []byte, blockSize int) error {
	padAmount := int(text[len(text)-1])
	if padAmount == 0 || padAmount > blockSize || padAmount > len(text) {
		return errors.New("aes_cbc: invalid ciphertext padding")
	}

	for _, b := range text[len(text)-padAmount:] {
		if int(b) != padAmount {
			return errors.New("aes_cbc: invalid ciphertext padding")
		}
	}

	return nil
}
