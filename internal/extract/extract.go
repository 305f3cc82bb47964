package extract

import "context"

// SourceUnit is one file handed to an extractor: its path and full text.
type SourceUnit struct {
	Path    string
	Content []byte
}

// Options selects which source positions yield candidates.
type Options struct {
	ConsoleArgs bool
	Comments    bool
	JSXText     bool
	EnumValues  bool
	EnumKeys    bool
	Identifiers bool
	Properties  bool
}

// DefaultOptions favors precision: UI-facing positions on, code-facing off.
func DefaultOptions() Options {
	return Options{
		JSXText:    true,
		EnumValues: true,
	}
}

// Extractor pulls translatable phrases out of one source unit, in source
// order. A returned error means the unit could not be processed at all;
// the caller decides whether to skip it or abort.
type Extractor interface {
	Name() string
	Extract(ctx context.Context, unit SourceUnit, opts Options) ([]string, error)
}
