// Package converter renders a parsed markup tree as view-building source
// code in one of two grammars.
package converter

import (
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rgonek/html-view-converter/dom"
	"github.com/rgonek/html-view-converter/htmlparser"
)

// tracer traces with key 'hvc.converter'.
func tracer() tracing.Trace {
	return tracing.Select("hvc.converter")
}

const (
	emptyRootTag = "html"
	wrapperTag   = "div"

	macroOpen  = "node! {\n"
	macroClose = "\n}"
)

// Parser turns markup into a node forest and classifies self-closing tags.
type Parser interface {
	Parse(markup string) ([]dom.Node, error)
	IsSelfClosing(tag string) bool
}

// Converter converts HTML to view code. It holds no per-call state and is
// safe for concurrent use if its Parser is.
type Converter struct {
	config Config
	parser Parser
}

// New creates a Converter that parses with htmlparser.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p, err := htmlparser.New(cfg.Parser)
	if err != nil {
		return nil, err
	}

	return &Converter{
		config: cfg,
		parser: p,
	}, nil
}

// NewWithParser creates a Converter that parses with p. cfg.Parser is
// validated but otherwise unused.
func NewWithParser(config Config, p Parser) (*Converter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{
		config: cfg,
		parser: p,
	}, nil
}

// Convert parses markup and returns the generated code.
func (c *Converter) Convert(markup string) (string, error) {
	nodes, err := c.Parse(markup)
	if err != nil {
		return "", err
	}
	return c.ConvertNodes(nodes)
}

// ConvertTo converts markup and writes the result to w in a single write.
// Nothing is written when the conversion fails.
func (c *Converter) ConvertTo(w io.Writer, markup string) error {
	out, err := c.Convert(markup)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return &ConversionError{Kind: ErrWrite, Err: err}
	}
	return nil
}

// Parse runs the parser alone. Failures are logged and returned as a
// *ConversionError of kind ErrParse.
func (c *Converter) Parse(markup string) ([]dom.Node, error) {
	nodes, err := c.parser.Parse(markup)
	if err != nil {
		tracer().Errorf("error: %v", err)
		return nil, &ConversionError{Kind: ErrParse, Err: err}
	}
	return nodes, nil
}

// ConvertNodes renders an already parsed forest.
func (c *Converter) ConvertNodes(nodes []dom.Node) (string, error) {
	root := Root(nodes)

	var sb strings.Builder
	p := c.newPrinter(&sb)
	if c.config.Grammar == GrammarMacro {
		p.print(macroOpen)
		p.indent(1)
		p.node(root, 1)
		p.print(macroClose)
	} else {
		p.node(root, 0)
	}
	if p.err != nil {
		return "", &ConversionError{Kind: ErrWrite, Err: p.err}
	}
	return sb.String(), nil
}

// Root reduces a forest to the single node that gets rendered: an empty
// html element for no nodes, the node itself for one, and a div wrapping
// all of them, in order, for more.
func Root(nodes []dom.Node) dom.Node {
	switch len(nodes) {
	case 0:
		tracer().Debugf("empty forest, using <%s> root", emptyRootTag)
		return dom.NewElement(emptyRootTag, nil, nil)
	case 1:
		return nodes[0]
	default:
		tracer().Debugf("%d top-level nodes, wrapping in <%s>", len(nodes), wrapperTag)
		return dom.NewElement(wrapperTag, nil, nodes)
	}
}
