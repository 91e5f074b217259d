package converter

import (
	"io"
	"strings"

	"github.com/rgonek/html-view-converter/dom"
)

const indentUnit = "    "

// printer writes rendered code to a sink. The first write error is kept and
// every later write is a no-op, so callers check err once at the end.
type printer struct {
	w           io.Writer
	config      Config
	selfClosing func(tag string) bool
	err         error
}

func (c *Converter) newPrinter(w io.Writer) *printer {
	return &printer{
		w:           w,
		config:      c.config,
		selfClosing: c.parser.IsSelfClosing,
	}
}

// Render writes node to w as it would appear nested indent levels deep.
// The first line is not indented; the caller owns the current line.
func (c *Converter) Render(w io.Writer, node dom.Node, indent int) error {
	p := c.newPrinter(w)
	p.node(node, indent)
	if p.err != nil {
		return &ConversionError{Kind: ErrWrite, Err: p.err}
	}
	return nil
}

func (p *printer) print(parts ...string) {
	for _, s := range parts {
		if p.err != nil {
			return
		}
		_, p.err = io.WriteString(p.w, s)
	}
}

func (p *printer) indent(level int) {
	p.print(strings.Repeat(indentUnit, level))
}

// newline starts a line at the given indent level.
func (p *printer) newline(level int) {
	p.print("\n")
	p.indent(level)
}

func (p *printer) macro() bool {
	return p.config.Grammar == GrammarMacro
}

func (p *printer) node(n dom.Node, indent int) {
	if p.err != nil {
		return
	}
	switch n := n.(type) {
	case dom.Text:
		if p.macro() {
			p.print(`"`, n.Data, `"`)
		} else {
			p.print(`text("`, n.Data, `")`)
		}
	case dom.Comment:
		p.print(`comment("`, n.Data, `")`)
	case *dom.Element:
		if p.macro() {
			p.macroElement(n, indent)
		} else {
			p.functionElement(n, indent)
		}
	}
}

// loneText reports whether el has exactly one child and it is text. Such a
// child is rendered on the opening line.
func loneText(el *dom.Element) bool {
	return len(el.Children) == 1 && dom.IsText(el.Children[0])
}

func (p *printer) macroElement(el *dom.Element, indent int) {
	p.print("<", el.Tag)
	for _, attr := range el.Attributes {
		p.attribute(attr)
	}
	if p.selfClosing(el.Tag) {
		p.print("/>")
		return
	}
	p.print(">")

	inline := loneText(el)
	p.children(el, indent, inline, "")
	if !inline && len(el.Children) > 0 {
		p.newline(indent)
	}
	p.print("</", el.Tag, ">")
}

func (p *printer) functionElement(el *dom.Element, indent int) {
	open, end := p.config.listTokens()

	p.print(el.Tag, "(", open)
	for _, attr := range el.Attributes {
		p.attribute(attr)
	}
	p.print(end, ",", open)

	if !p.selfClosing(el.Tag) {
		inline := loneText(el)
		p.children(el, indent, inline, ",")
		if !inline && len(el.Children) > 0 {
			p.newline(indent)
		}
	}
	p.print(end, ")")
}

// children renders the children of el, either inline or one per line with
// terminator after each.
func (p *printer) children(el *dom.Element, indent int, inline bool, terminator string) {
	if inline {
		p.node(el.Children[0], indent)
		return
	}
	for _, child := range el.Children {
		p.newline(indent + 1)
		p.node(child, indent+1)
		p.print(terminator)
	}
}
