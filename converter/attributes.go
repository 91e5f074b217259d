package converter

import (
	"github.com/rgonek/html-view-converter/dom"
)

// namespacePrefix is used for every namespaced attribute; xlink is the only
// namespace that reaches the renderer in practice.
const namespacePrefix = "xlink"

// attribute renders each value of attr. The macro grammar puts a space
// before every rendered value and the function grammar a comma after it;
// values that cannot be rendered produce no output at all.
func (p *printer) attribute(attr dom.Attribute) {
	for _, v := range attr.Values {
		if !renderable(v) {
			continue
		}
		if p.macro() {
			p.print(" ")
			p.macroAttributeValue(attr, v)
		} else {
			p.functionAttributeValue(attr, v)
			p.print(",")
		}
	}
}

func renderable(v dom.AttributeValue) bool {
	switch v.(type) {
	case dom.Simple, dom.Style:
		return true
	default:
		return false
	}
}

func (p *printer) macroAttributeValue(attr dom.Attribute, v dom.AttributeValue) {
	switch v := v.(type) {
	case dom.Simple:
		if attr.Namespace != "" {
			p.print(namespacePrefix, "::", attr.Name, "=")
		} else if fn, ok := AttributeFunction(attr.Name); ok {
			p.print(fn, "=")
		} else {
			p.print(attr.Name, "=")
		}
		p.value(v.Value)
	case dom.Style:
		p.print(`style="`)
		p.declarations(v)
		p.print(`"`)
	}
}

func (p *printer) functionAttributeValue(attr dom.Attribute, v dom.AttributeValue) {
	switch v := v.(type) {
	case dom.Simple:
		if attr.Namespace != "" {
			p.print(namespacePrefix, "_", attr.Name, "(")
		} else if fn, ok := AttributeFunction(attr.Name); ok {
			p.print(fn, "(")
		} else {
			p.print(`attr("`, attr.Name, `",`)
		}
		p.value(v.Value)
		p.print(")")
	case dom.Style:
		p.print(`style("`)
		p.declarations(v)
		p.print(`")`)
	}
}

// declarations writes every declaration followed by a semicolon.
func (p *printer) declarations(style dom.Style) {
	for _, decl := range style.Declarations {
		p.print(decl, ";")
	}
}

// value writes v as a literal: strings quoted verbatim, numbers and
// booleans bare, null not at all.
func (p *printer) value(v dom.Value) {
	if s, ok := v.AsString(); ok {
		p.print(`"`, s, `"`)
		return
	}
	switch v.Kind() {
	case dom.KindInt, dom.KindFloat, dom.KindBool:
		p.print(v.String())
	}
}
