// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BodyKind tells what a record body currently holds inside an edit session.
type BodyKind int

const (
	// BodyCiphertext is the body exactly as loaded from the record service.
	BodyCiphertext BodyKind = iota
	// BodyPlaintext is the body returned by an explicit decrypt, including
	// later edits to it.
	BodyPlaintext
	// BodyUserInput is text typed by the user.
	BodyUserInput
)

// String implements fmt.Stringer.
func (k BodyKind) String() string {
	switch k {
	case BodyCiphertext:
		return "ciphertext"
	case BodyPlaintext:
		return "plaintext"
	case BodyUserInput:
		return "user input"
	default:
		return "unknown"
	}
}

// Body is the tagged view of [Record.Data] kept by the editor. The wire
// model stays a single string; the tag never leaves the client.
type Body struct {
	Kind  BodyKind
	Value string
}

// IsPlaintext reports whether the body came from a decrypt.
func (b Body) IsPlaintext() bool {
	return b.Kind == BodyPlaintext
}
