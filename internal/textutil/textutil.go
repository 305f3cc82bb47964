package textutil

import (
	"crypto/sha256"
	"encoding/hex"
	"unicode"
)

// ContainsHan checks if a string contains at least one Han character.
func ContainsHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// HanCount returns the number of Han characters in a string.
func HanCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			n++
		}
	}
	return n
}

// LatinCount returns the number of Latin letters in a string.
func LatinCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.Is(unicode.Latin, r) {
			n++
		}
	}
	return n
}

// RuneLen returns the length of a string in runes, not bytes.
func RuneLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Hash computes a SHA-256 hex hash of a string, used as a cache key.
func Hash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])
}

// Truncate shortens a string to maxRunes, appending "..." if truncated.
// Cuts on rune boundaries so multi-byte text is never split mid-character.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
