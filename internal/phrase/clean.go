package phrase

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"hanscan/internal/textutil"
)

// Pictographic and symbol blocks replaced with spaces before segmentation.
var emojiBlocks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2190, Hi: 0x21FF, Stride: 1}, // arrows
		{Lo: 0x2300, Hi: 0x23FF, Stride: 1}, // misc technical
		{Lo: 0x2460, Hi: 0x24FF, Stride: 1}, // enclosed alphanumerics
		{Lo: 0x25A0, Hi: 0x25FF, Stride: 1}, // geometric shapes
		{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // misc symbols
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1}, // dingbats
		{Lo: 0x2B00, Hi: 0x2BFF, Stride: 1}, // arrows and stars
		{Lo: 0xFE00, Hi: 0xFE0F, Stride: 1}, // variation selectors
	},
	R32: []unicode.Range32{
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1}, // regional indicators
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // supplemental symbols
		{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1}, // extended symbols
	},
}

// Icon-ish glyphs common in UI strings that fall outside the blocks above.
const iconGlyphs = "©®™℃℉№§¶±×÷¥€£°"

var (
	// Interior punctuation that separates clauses within one span.
	interiorPunct = regexp.MustCompile("[，。！？；：、·•…—–―～“”‘’「」『』（）《》〈〉【】〔〕・]+")

	// Latin letters, decimal digits, and any ASCII byte.
	latinDigitRun = regexp.MustCompile(`[\x00-\x7F\p{Latin}\p{Nd}]+`)
)

// Clean normalizes one raw candidate span into zero or more final phrases:
// symbols out, edges trimmed, clauses split, Latin and digits dropped, and
// each surviving segment classified strictly. Applying Clean to one of its
// own outputs returns that output unchanged.
func Clean(text string) []string {
	trimmed := trimEdgePunct(stripSymbols(text))
	if !textutil.ContainsHan(trimmed) {
		return nil
	}
	var phrases []string
	for _, seg := range interiorPunct.Split(trimmed, -1) {
		seg = latinDigitRun.ReplaceAllString(seg, "")
		seg = trimEdgePunct(seg)
		if seg == "" {
			continue
		}
		if IsTranslatable(seg, StrictMaxRunes) {
			phrases = append(phrases, seg)
		}
	}
	return phrases
}

func stripSymbols(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isStrippedSymbol(r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isStrippedSymbol(r rune) bool {
	if r < utf8.RuneSelf {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}
	if unicode.Is(emojiBlocks, r) {
		return true
	}
	return strings.ContainsRune(iconGlyphs, r)
}

func trimEdgePunct(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}
