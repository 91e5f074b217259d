// Package htmlparser turns markup text into a dom node forest.
package htmlparser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/npillmayer/schuko/tracing"
	"github.com/rgonek/html-view-converter/dom"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'hvc.htmlparser'.
func tracer() tracing.Trace {
	return tracing.Select("hvc.htmlparser")
}

// ParseError reports markup that could not be turned into a tree.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser parses markup according to its Config. A Parser holds no state
// between calls and may be shared.
type Parser struct {
	config Config
}

// New creates a Parser with the given config.
func New(config Config) (*Parser, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Parser{config: config}, nil
}

// IsSelfClosing reports whether tag has no closing form.
func (p *Parser) IsSelfClosing(tag string) bool {
	return IsSelfClosing(tag)
}

// Parse returns the top-level nodes of markup in document order.
func (p *Parser) Parse(markup string) ([]dom.Node, error) {
	if p.config.Minify {
		minified, err := minifyMarkup(markup)
		if err != nil {
			return nil, &ParseError{Msg: "failed to minify markup", Err: err}
		}
		markup = minified
	}

	roots, err := p.parseRoots(markup)
	if err != nil {
		return nil, err
	}

	b := &builder{config: p.config}
	var nodes []dom.Node
	for _, root := range roots {
		n, keep, err := b.convert(root, 1)
		if err != nil {
			return nil, err
		}
		if keep {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

func (p *Parser) parseRoots(markup string) ([]*xhtml.Node, error) {
	if strings.TrimSpace(p.config.Selector) != "" {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
		if err != nil {
			return nil, &ParseError{Msg: "failed to parse document", Err: err}
		}
		matches := doc.Find(p.config.Selector).Nodes
		tracer().Debugf("selector %q matched %d elements", p.config.Selector, len(matches))
		return matches, nil
	}

	if isDocument(markup) {
		doc, err := xhtml.Parse(strings.NewReader(markup))
		if err != nil {
			return nil, &ParseError{Msg: "failed to parse document", Err: err}
		}
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == xhtml.ElementNode {
				return []*xhtml.Node{c}, nil
			}
		}
		return nil, nil
	}

	bodyContext := &xhtml.Node{
		Type:     xhtml.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := xhtml.ParseFragment(strings.NewReader(markup), bodyContext)
	if err != nil {
		return nil, &ParseError{Msg: "failed to parse fragment", Err: err}
	}
	return nodes, nil
}

// isDocument reports whether markup is a whole document rather than a
// fragment. Fragments are parsed in a body context, which would discard the
// html, head and body tags of a document.
func isDocument(markup string) bool {
	head := strings.ToLower(strings.TrimSpace(markup))
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}

type builder struct {
	config Config
}

// convert maps a parsed node to its dom counterpart. keep is false for nodes
// the config drops.
func (b *builder) convert(n *xhtml.Node, depth int) (dom.Node, bool, error) {
	switch n.Type {
	case xhtml.TextNode:
		if !b.config.KeepWhitespace && strings.TrimSpace(n.Data) == "" {
			return nil, false, nil
		}
		return dom.Text{Data: n.Data}, true, nil
	case xhtml.CommentNode:
		if !b.config.KeepComments {
			return nil, false, nil
		}
		return dom.Comment{Data: n.Data}, true, nil
	case xhtml.ElementNode:
		el, err := b.element(n, depth)
		if err != nil {
			return nil, false, err
		}
		return el, true, nil
	default:
		return nil, false, nil
	}
}

func (b *builder) element(n *xhtml.Node, depth int) (*dom.Element, error) {
	if b.config.MaxDepth > 0 && depth > b.config.MaxDepth {
		return nil, &ParseError{Msg: fmt.Sprintf("element <%s> nested %d deep exceeds limit of %d", n.Data, depth, b.config.MaxDepth)}
	}

	tag := n.Data
	if n.Namespace == "svg" {
		tag = svgTagName(tag)
	}

	el := &dom.Element{Tag: tag}
	for _, a := range n.Attr {
		if a.Namespace == "xmlns" {
			continue
		}
		el.Attributes = append(el.Attributes, attribute(a))
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		child, keep, err := b.convert(c, depth+1)
		if err != nil {
			return nil, err
		}
		if keep {
			el.Children = append(el.Children, child)
		}
	}
	return el, nil
}

func attribute(a xhtml.Attribute) dom.Attribute {
	if a.Namespace == "" && a.Key == "style" {
		return dom.StyleAttr(parseStyle(a.Val)...)
	}
	return dom.Attribute{
		Name:      a.Key,
		Namespace: a.Namespace,
		Values:    []dom.AttributeValue{dom.Simple{Value: parseValue(a.Val)}},
	}
}
