package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"hanscan/internal/phrase"
)

// VueExtractor handles single-file components. Template text nodes and
// attribute values go through the Cleaner directly; each script block is
// handed to the wrapped extractor under a synthetic path carrying the
// dialect named by its lang attribute.
type VueExtractor struct {
	inner Extractor
}

func NewVueExtractor(inner Extractor) *VueExtractor {
	return &VueExtractor{inner: inner}
}

func (e *VueExtractor) Name() string { return "vue+" + e.inner.Name() }

func (e *VueExtractor) Extract(ctx context.Context, unit SourceUnit, opts Options) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(unit.Content)))
	if err != nil {
		return nil, fmt.Errorf("parse component %s: %w", unit.Path, err)
	}

	var out []string
	doc.Find("template").Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			collectMarkup(n, &out)
		}
	})

	var scriptErr error
	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		lang, _ := sel.Attr("lang")
		ext := ".js"
		if l := strings.ToLower(lang); l == "ts" || l == "tsx" {
			ext = "." + l
		}
		script := SourceUnit{Path: unit.Path + ext, Content: []byte(sel.Text())}
		phrases, err := e.inner.Extract(ctx, script, opts)
		if err != nil {
			if scriptErr == nil {
				scriptErr = err
			}
			return
		}
		out = append(out, phrases...)
	})
	if scriptErr != nil {
		return nil, scriptErr
	}
	return out, nil
}

func collectMarkup(n *html.Node, out *[]string) {
	switch n.Type {
	case html.TextNode:
		*out = append(*out, phrase.Clean(n.Data)...)
	case html.ElementNode:
		for _, attr := range n.Attr {
			*out = append(*out, phrase.Clean(attr.Val)...)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectMarkup(c, out)
	}
}
