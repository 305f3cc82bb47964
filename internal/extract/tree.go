package extract

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"hanscan/internal/phrase"
)

// TreeExtractor walks a parse tree of the source, so every candidate comes
// with its syntactic position: object keys are excluded exactly, console
// arguments and comments are recognized without guessing, and template
// literals segment on their real interpolation boundaries.
type TreeExtractor struct{}

func NewTreeExtractor() *TreeExtractor { return &TreeExtractor{} }

func (e *TreeExtractor) Name() string { return "tree" }

// consoleDepth bounds the ancestor walk when checking whether a node sits
// inside a console call argument. Strings nested deeper, inside a closure
// passed to the call, count as their own context.
const consoleDepth = 8

var consoleMethods = map[string]bool{
	"log":   true,
	"info":  true,
	"warn":  true,
	"error": true,
	"debug": true,
	"trace": true,
}

func (e *TreeExtractor) Extract(ctx context.Context, unit SourceUnit, opts Options) ([]string, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(DetectDialect(unit.Path).Language())
	tree, err := parser.ParseCtx(ctx, nil, unit.Content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", unit.Path, err)
	}
	defer tree.Close()

	// A tree with error nodes is still walked; recovery keeps the intact
	// subtrees usable.
	w := &treeWalker{src: unit.Content, opts: opts}
	w.walk(tree.RootNode())
	return w.phrases, nil
}

type treeWalker struct {
	src     []byte
	opts    Options
	phrases []string
}

// collect gates the raw span leniently before cleaning, so code-shaped
// values (literal escapes, keywords, majority-Latin text) are rejected
// whole, exactly as the pattern extractor rejects its raw captures.
func (w *treeWalker) collect(raw string) {
	if !phrase.IsTranslatable(raw, phrase.LenientMaxRunes) {
		return
	}
	w.phrases = append(w.phrases, phrase.Clean(raw)...)
}

func (w *treeWalker) walk(n *sitter.Node) {
	switch n.Type() {
	case "string":
		if !w.keyPosition(n) && !w.excludedCall(n) {
			w.collect(stringValue(n, w.src))
		}
		return
	case "template_string":
		if !w.keyPosition(n) && !w.excludedCall(n) {
			w.collectTemplate(n)
		}
		return
	case "jsx_text":
		if w.opts.JSXText && !w.excludedCall(n) {
			w.collect(n.Content(w.src))
		}
		return
	case "comment":
		if w.opts.Comments {
			w.collect(stripCommentMarkers(n.Content(w.src)))
		}
		return
	case "enum_body":
		w.walkEnumBody(n)
		return
	case "identifier":
		if w.opts.Identifiers {
			w.collect(n.Content(w.src))
		}
		return
	case "property_identifier":
		if w.opts.Properties {
			w.collect(n.Content(w.src))
		}
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		w.walk(n.NamedChild(i))
	}
}

// collectTemplate takes the fixed fragments of a template literal, between
// the backticks and around each substitution, then walks the substitution
// subtrees so string literals inside them are still seen.
func (w *treeWalker) collectTemplate(n *sitter.Node) {
	var subs []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == "template_substitution" {
			subs = append(subs, c)
		}
	}
	if len(subs) == 0 {
		content := n.Content(w.src)
		content = strings.TrimPrefix(content, "`")
		content = strings.TrimSuffix(content, "`")
		w.collect(content)
		return
	}
	prev := int(n.StartByte()) + 1
	for _, s := range subs {
		w.collect(string(w.src[prev:int(s.StartByte())]))
		for i := 0; i < int(s.NamedChildCount()); i++ {
			w.walk(s.NamedChild(i))
		}
		prev = int(s.EndByte())
	}
	w.collect(string(w.src[prev : int(n.EndByte())-1]))
}

func (w *treeWalker) walkEnumBody(n *sitter.Node) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		m := n.NamedChild(i)
		switch m.Type() {
		case "enum_assignment":
			if w.opts.EnumKeys {
				if name := m.ChildByFieldName("name"); name != nil {
					w.collect(memberName(name, w.src))
				}
			}
			if w.opts.EnumValues {
				if value := m.ChildByFieldName("value"); value != nil {
					switch value.Type() {
					case "string":
						w.collect(stringValue(value, w.src))
					case "template_string":
						w.collectTemplate(value)
					}
				}
			}
		case "property_identifier", "string":
			if w.opts.EnumKeys {
				w.collect(memberName(m, w.src))
			}
		}
	}
}

// keyPosition reports whether n is the name side of a pair, signature or
// field rather than a value.
func (w *treeWalker) keyPosition(n *sitter.Node) bool {
	parent := n.Parent()
	if parent == nil {
		return false
	}
	switch parent.Type() {
	case "pair", "pair_pattern", "property_signature", "field_definition", "public_field_definition":
		for _, field := range []string{"key", "name", "property"} {
			if k := parent.ChildByFieldName(field); k != nil && sameNode(k, n) {
				return true
			}
		}
	}
	return false
}

// excludedCall reports whether n sits in the argument list of a console
// call, walking at most consoleDepth ancestors.
func (w *treeWalker) excludedCall(n *sitter.Node) bool {
	if w.opts.ConsoleArgs {
		return false
	}
	cur := n.Parent()
	for depth := 0; cur != nil && depth < consoleDepth; depth++ {
		if cur.Type() == "arguments" {
			if call := cur.Parent(); call != nil && call.Type() == "call_expression" && w.consoleCall(call) {
				return true
			}
		}
		cur = cur.Parent()
	}
	return false
}

func (w *treeWalker) consoleCall(call *sitter.Node) bool {
	fn := call.ChildByFieldName("function")
	if fn == nil || fn.Type() != "member_expression" {
		return false
	}
	obj := fn.ChildByFieldName("object")
	prop := fn.ChildByFieldName("property")
	if obj == nil || prop == nil || obj.Type() != "identifier" {
		return false
	}
	return obj.Content(w.src) == "console" && consoleMethods[prop.Content(w.src)]
}

func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}

// stringValue returns the content of a string node without its surrounding
// quotes. Escape sequences stay literal; the classifier treats them as a
// code shape.
func stringValue(n *sitter.Node, src []byte) string {
	s := n.Content(src)
	if len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	return s
}

func memberName(n *sitter.Node, src []byte) string {
	if n.Type() == "string" {
		return stringValue(n, src)
	}
	return n.Content(src)
}

func stripCommentMarkers(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "//"):
		s = s[2:]
	case strings.HasPrefix(s, "/*"):
		s = strings.TrimPrefix(s, "/*")
		s = strings.TrimSuffix(strings.TrimSpace(s), "*/")
	}
	return strings.TrimSpace(s)
}
