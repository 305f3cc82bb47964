package phrase

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"hanscan/internal/textutil"
)

const scoreLenCap = 20

const (
	terminalMarks = "。！？!?."
	commaMarks    = "，、,；;"
)

// Score rates how much a phrase looks like a complete, well-formed message.
// Length counts up to a cap, a sentence-terminal ending earns a bonus, and
// comma-class marks help in the middle but hurt at the edges.
func Score(p string) int {
	runes := []rune(p)
	n := len(runes)
	if n == 0 {
		return 0
	}
	score := n
	if score > scoreLenCap {
		score = scoreLenCap
	}
	if strings.ContainsRune(terminalMarks, runes[n-1]) {
		score += 5
	}
	for i := 1; i < n-1; i++ {
		if strings.ContainsRune(commaMarks, runes[i]) {
			score += 2
			break
		}
	}
	if strings.ContainsRune(commaMarks, runes[0]) {
		score -= 3
	}
	if strings.ContainsRune(commaMarks, runes[n-1]) {
		score -= 1
	}
	return score
}

type scoredEntry struct {
	index int
	score int
	size  int
}

// Dedupe collapses near-duplicate phrases. Each normalized key keeps one
// variant at the position where the key first appeared; a later candidate
// takes that slot only if it is strictly longer or strictly better scored.
func Dedupe(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	seen := make(map[string]scoredEntry, len(phrases))
	for _, p := range phrases {
		key := normalizeKey(p)
		if key == "" {
			continue
		}
		size := textutil.RuneLen(p)
		sc := Score(p)
		prev, ok := seen[key]
		if !ok {
			seen[key] = scoredEntry{index: len(out), score: sc, size: size}
			out = append(out, p)
			continue
		}
		if size > prev.size || sc > prev.score {
			out[prev.index] = p
			seen[key] = scoredEntry{index: prev.index, score: sc, size: size}
		}
	}
	return out
}

// DedupeFirstWins keeps the first occurrence of each phrase, comparing
// case-insensitively with all whitespace removed.
func DedupeFirstWins(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	seen := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		key := strings.ToLower(stripSpace(p))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

// normalizeKey folds width variants, lowercases, collapses whitespace and
// drops punctuation so that cosmetic variants of a phrase compare equal.
func normalizeKey(p string) string {
	folded := strings.ToLower(width.Fold.String(p))
	joined := strings.Join(strings.Fields(folded), " ")
	var b strings.Builder
	b.Grow(len(joined))
	for _, r := range joined {
		if unicode.IsPunct(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
