// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "strings"

// SummaryLength is the number of characters of a body shown in the list.
const SummaryLength = 60

const ellipsis = "…"

// Ellipsize shortens s to at most limit characters including the trailing
// ellipsis. It cuts at the last space or hyphen before the limit when there
// is one, otherwise mid-word. Strings that fit are returned unchanged.
func Ellipsize(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	window := string(runes[:limit])
	if cut := strings.LastIndexAny(window, " -"); cut > 0 {
		if head := strings.TrimRight(window[:cut], " -"); head != "" {
			return head + ellipsis
		}
	}

	return string(runes[:limit-1]) + ellipsis
}

// Summary is the list-view rendition of a record body.
func Summary(data string) string {
	return Ellipsize(data, SummaryLength)
}
