package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

var (
	// ErrUnknownSource is returned for URLs that no extractor handles
	ErrUnknownSource = errors.New("unknown data source")
	// ErrFieldNotFound is returned when a page lacks the name or author
	ErrFieldNotFound = errors.New("field not found")
)

// Extractor reads the product name and author from a store page
type Extractor interface {
	Name() (string, error)
	Author() (string, error)
}

// Source is a store site with its own page layout
type Source struct {
	ID      string
	Pattern string // Substring identifying the site's URLs
	New     func(p *Page) Extractor
}

// Sources lists the supported store sites in match order
var Sources = []Source{
	{ID: "google_play", Pattern: "play.google", New: func(p *Page) Extractor { return GooglePlay{p} }},
	{ID: "itunes", Pattern: "itunes.apple", New: func(p *Page) Extractor { return AppleITunes{p} }},
	{ID: "windows_phone", Pattern: "windowsphone", New: func(p *Page) Extractor { return WindowsPhone{p} }},
}

// ForURL returns the source that handles url
func ForURL(url string) (Source, error) {
	for _, s := range Sources {
		if strings.Contains(url, s.Pattern) {
			return s, nil
		}
	}
	return Source{}, fmt.Errorf("%w: %s", ErrUnknownSource, url)
}

// Parse parses htmlContent and returns the extractor for the source of url
func Parse(url, htmlContent string) (Extractor, error) {
	src, err := ForURL(url)
	if err != nil {
		return nil, err
	}

	page, err := NewPage(htmlContent)
	if err != nil {
		return nil, err
	}

	return src.New(page), nil
}

// Page is a parsed HTML document queried with XPath or CSS selectors
type Page struct {
	root *html.Node
	doc  *goquery.Document
}

// NewPage parses HTML content
func NewPage(htmlContent string) (*Page, error) {
	root, err := htmlquery.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return &Page{
		root: root,
		doc:  goquery.NewDocumentFromNode(root),
	}, nil
}

// XPathText returns the text of the last node matching expr
func (p *Page) XPathText(expr string) (string, bool) {
	nodes, err := htmlquery.QueryAll(p.root, expr)
	if err != nil || len(nodes) == 0 {
		return "", false
	}
	return htmlquery.InnerText(nodes[len(nodes)-1]), true
}

// CSSText returns the trimmed text of the last element matching selector
func (p *Page) CSSText(selector string) (string, bool) {
	sel := p.doc.Find(selector)
	if sel.Length() == 0 {
		return "", false
	}
	text := strings.TrimSpace(sel.Last().Text())
	return text, text != ""
}

// MetaContent returns the content of a <meta property=...> or <meta name=...> tag
func (p *Page) MetaContent(property string) (string, bool) {
	sel := p.doc.Find(fmt.Sprintf("meta[property='%s'], meta[name='%s']", property, property)).First()
	content := strings.TrimSpace(sel.AttrOr("content", ""))
	return content, content != ""
}

// firstOf returns the first successful lookup
func firstOf(field string, lookups ...func() (string, bool)) (string, error) {
	for _, lookup := range lookups {
		if v, ok := lookup(); ok {
			return v, nil
		}
	}
	return "", fmt.Errorf("%s: %w", field, ErrFieldNotFound)
}
