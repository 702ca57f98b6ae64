// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrInvalidPublicKey  = errors.New("invalid rsa public key")
	ErrInvalidPrivateKey = errors.New("invalid rsa private key")
	ErrKeyMismatch       = errors.New("rsa public key does not match private key")
	ErrPlaintextTooLong  = errors.New("plaintext too long")
	ErrEncrypt           = errors.New("encryption failed")
	ErrDecrypt           = errors.New("decryption failed")
)
