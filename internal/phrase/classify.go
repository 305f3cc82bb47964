package phrase

import (
	"regexp"
	"strings"

	"hanscan/internal/textutil"
)

// Rune caps for candidate text. Raw spans captured from source lines get the
// lenient cap before segmentation; final phrases are held to the strict one.
const (
	StrictMaxRunes  = 20
	LenientMaxRunes = 50
)

var (
	// Digits, punctuation, symbols and whitespace only: "80%", "...", "2024-01-01".
	digitPunctOnly = regexp.MustCompile(`^[\p{N}\p{P}\p{S}\s]+$`)

	// identifier: identifier is a type annotation or object shape, not prose.
	identifierPair = regexp.MustCompile(`[A-Za-z_$][A-Za-z0-9_$]*\s*:\s*[A-Za-z_$]`)

	codeKeyword = regexp.MustCompile(`\b(function|return|const|let|var|import|export|from|class|interface|enum|type|typeof|instanceof|new|this|async|await|if|else|switch|case|for|while)\b`)
)

// IsTranslatable reports whether text is a human-facing phrase worth keeping
// rather than code, markup or numeric noise. maxRunes is the length cap for
// the call site, StrictMaxRunes or LenientMaxRunes.
func IsTranslatable(text string, maxRunes int) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if digitPunctOnly.MatchString(trimmed) {
		return false
	}
	if !textutil.ContainsHan(trimmed) {
		return false
	}
	if textutil.RuneLen(trimmed) > maxRunes {
		return false
	}
	if looksLikeCode(trimmed) {
		return false
	}
	return textutil.HanCount(trimmed) > textutil.LatinCount(trimmed)
}

func looksLikeCode(s string) bool {
	if strings.ContainsAny(s, "{}[]();") {
		return true
	}
	// Literal backslash escapes, not actual control characters.
	if strings.Contains(s, `\n`) || strings.Contains(s, `\t`) {
		return true
	}
	if strings.HasPrefix(s, "//") || strings.HasPrefix(s, "/*") || strings.HasPrefix(s, "*") {
		return true
	}
	if codeKeyword.MatchString(s) {
		return true
	}
	return identifierPair.MatchString(s)
}
