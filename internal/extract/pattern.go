package extract

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"regexp"

	"hanscan/internal/phrase"
)

// PatternExtractor scans source line by line with regular expressions. It
// needs no parse tree, so it works on files the grammars cannot handle, at
// the cost of missing strings that span lines and seeing into comments.
type PatternExtractor struct{}

func NewPatternExtractor() *PatternExtractor { return &PatternExtractor{} }

func (e *PatternExtractor) Name() string { return "pattern" }

var (
	// IDENTIFIER = 'value' in any of the three quote styles, the value
	// holding at least one Han character. Matched against the whole file
	// so enum and const members are caught wherever they sit. The name
	// class admits Han letters since enum members are often named in the
	// target script.
	enumValuePattern = regexp.MustCompile("[\\p{L}_$][\\p{L}\\p{N}_$]*\\s*=\\s*(?:'([^'\\n]*\\p{Han}[^'\\n]*)'|\"([^\"\\n]*\\p{Han}[^\"\\n]*)\"|`([^`\\n]*\\p{Han}[^`\\n]*)`)")

	// A dotted member access whose property starts with a Han rune is a
	// usage of an enum member, not a new string. Optionally preceded by
	// an object key and colon.
	enumUsagePattern = regexp.MustCompile(`^\s*(?:[A-Za-z_$][A-Za-z0-9_$]*\s*:\s*)?[A-Za-z_$][A-Za-z0-9_$.]*\.\p{Han}`)

	consoleLinePattern = regexp.MustCompile(`^\s*console\.(log|info|warn|error|debug|trace)\s*\(`)

	singleQuoted = regexp.MustCompile(`'([^'\n]*\p{Han}[^'\n]*)'`)
	doubleQuoted = regexp.MustCompile(`"([^"\n]*\p{Han}[^"\n]*)"`)
	backQuoted   = regexp.MustCompile("`([^`\\n]*\\p{Han}[^`\\n]*)`")
)

func (e *PatternExtractor) Extract(_ context.Context, unit SourceUnit, opts Options) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	collect := func(raw string) {
		if !phrase.IsTranslatable(raw, phrase.LenientMaxRunes) {
			return
		}
		for _, p := range phrase.Clean(raw) {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}

	if opts.EnumValues {
		for _, m := range enumValuePattern.FindAllStringSubmatch(string(unit.Content), -1) {
			switch {
			case m[1] != "":
				collect(m[1])
			case m[2] != "":
				collect(m[2])
			case m[3] != "":
				for _, seg := range SplitInterpolations(m[3]) {
					collect(seg)
				}
			}
		}
	}

	scanner := bufio.NewScanner(bytes.NewReader(unit.Content))
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if enumUsagePattern.MatchString(line) {
			continue
		}
		if !opts.ConsoleArgs && consoleLinePattern.MatchString(line) {
			continue
		}
		for _, m := range singleQuoted.FindAllStringSubmatch(line, -1) {
			collect(m[1])
		}
		for _, m := range doubleQuoted.FindAllStringSubmatch(line, -1) {
			collect(m[1])
		}
		for _, m := range backQuoted.FindAllStringSubmatch(line, -1) {
			for _, seg := range SplitInterpolations(m[1]) {
				collect(seg)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", unit.Path, err)
	}
	return out, nil
}
