// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
)

// pkcs1v15Overhead is the padding PKCS#1 v1.5 adds to every block.
const pkcs1v15Overhead = 11

type rsaCipher struct {
	public  *rsa.PublicKey
	private *rsa.PrivateKey
}

// NewRSACipher builds a [Cipher] from a base64 key pair. The public key must
// belong to the private key.
func NewRSACipher(keys KeyPair) (Cipher, error) {
	public, err := ParsePublicKey(keys.PublicKey)
	if err != nil {
		return nil, err
	}

	private, err := ParsePrivateKey(keys.PrivateKey)
	if err != nil {
		return nil, err
	}

	if !public.Equal(&private.PublicKey) {
		return nil, ErrKeyMismatch
	}

	return &rsaCipher{public: public, private: private}, nil
}

func (c *rsaCipher) MaxPlaintextLen() int {
	return c.public.Size() - pkcs1v15Overhead
}

func (c *rsaCipher) Encrypt(plaintext string) (string, error) {
	if len(plaintext) > c.MaxPlaintextLen() {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrPlaintextTooLong, len(plaintext), c.MaxPlaintextLen())
	}

	out, err := rsa.EncryptPKCS1v15(rand.Reader, c.public, []byte(plaintext))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncrypt, err)
	}

	return base64.StdEncoding.EncodeToString(out), nil
}

func (c *rsaCipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	out, err := rsa.DecryptPKCS1v15(rand.Reader, c.private, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	return string(out), nil
}
