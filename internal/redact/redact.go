// Package redact hides secret values for display while keeping them
// recognisable.
package redact

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	// visibleSuffix is how many trailing characters Mask leaves readable
	visibleSuffix = 4
	// fingerprintSize is the number of hash bytes shown
	fingerprintSize = 8
)

// Mask replaces all but the last few characters of s with asterisks.
// Short values are hidden entirely.
func Mask(s string) string {
	if s == "" {
		return "(empty)"
	}
	runes := []rune(s)
	if len(runes) <= visibleSuffix*2 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-visibleSuffix) + string(runes[len(runes)-visibleSuffix:])
}

// Fingerprint returns a short BLAKE2b digest of s so two secrets can be
// compared without printing either.
func Fingerprint(s string) string {
	sum := blake2b.Sum256([]byte(s))
	return "blake2b:" + hex.EncodeToString(sum[:fingerprintSize])
}
