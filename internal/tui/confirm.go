// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// confirmModel asks before a decrypted body is saved as is.
type confirmModel struct{}

func (m confirmModel) View() string {
	content := "The body holds decrypted plaintext.\n"
	content += "Saving stores it in place of the ciphertext.\n\n"
	content += "y save    n back to editing"
	return overlayBoxStyle.Render(content)
}
