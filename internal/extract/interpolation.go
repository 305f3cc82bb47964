package extract

// Span marks a half-open byte range [Start, End) within a source string.
type Span struct {
	Start int
	End   int
}

// InterpolationSpans finds ${...} template interpolations in text. Brace
// depth is tracked so an object literal inside an interpolation stays
// within one span. An unterminated interpolation swallows nothing; the
// rest of the text counts as literal.
func InterpolationSpans(text string) []Span {
	var spans []Span
	for i := 0; i+1 < len(text); i++ {
		if text[i] != '$' || text[i+1] != '{' {
			continue
		}
		depth := 0
		end := -1
		for j := i + 1; j < len(text) && end < 0; j++ {
			switch text[j] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					end = j + 1
				}
			}
		}
		if end < 0 {
			break
		}
		spans = append(spans, Span{Start: i, End: end})
		i = end - 1
	}
	return spans
}

// SplitInterpolations returns the literal fragments of a template around
// its ${...} interpolations, in source order. Text without interpolations
// comes back as a single fragment. Fragments may be empty.
func SplitInterpolations(text string) []string {
	spans := InterpolationSpans(text)
	if len(spans) == 0 {
		return []string{text}
	}
	segments := make([]string, 0, len(spans)+1)
	prev := 0
	for _, sp := range spans {
		segments = append(segments, text[prev:sp.Start])
		prev = sp.End
	}
	return append(segments, text[prev:])
}
