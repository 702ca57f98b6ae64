// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the record service's encryption at rest.
//
// Record bodies are encrypted with RSA PKCS#1 v1.5 under the service's
// public key and stored as standard base64. Keys are exchanged as base64
// strings: the public key in X.509 (PKIX) DER form, the private key in
// PKCS#8 DER form. Nothing in the client imports this package.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher encrypts and decrypts record bodies.
type Cipher interface {
	// Encrypt returns the base64 ciphertext of plaintext. Fails with
	// [ErrPlaintextTooLong] when plaintext exceeds [Cipher.MaxPlaintextLen].
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Input that is not valid base64 or does not
	// decrypt under the private key fails with [ErrDecrypt].
	Decrypt(ciphertext string) (string, error)

	// MaxPlaintextLen is the largest plaintext, in bytes, Encrypt accepts.
	MaxPlaintextLen() int
}
