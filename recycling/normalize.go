// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

package recycling

import (
	"strings"
	"unicode"
)

// accentFolder covers the accented letters of Brazilian Portuguese. It is
// applied after lowercasing, so only the lowercase forms are listed.
var accentFolder = strings.NewReplacer(
	"á", "a", "à", "a", "ã", "a", "â", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

// NormalizeMaterial maps a free-text material label to the key used for
// comparisons: lowercased, accent-folded, without punctuation and trimmed.
func NormalizeMaterial(text string) string {
	if text == "" {
		return ""
	}

	text = accentFolder.Replace(strings.ToLower(text))

	text = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, text)

	return strings.TrimSpace(text)
}
