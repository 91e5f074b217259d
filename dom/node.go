// Package dom holds the parsed markup tree consumed by the converter.
//
// Trees are built once by a parser and then only read; nothing in this
// module mutates a node after construction.
package dom

// Node is a Text, a Comment or an *Element.
type Node interface {
	node()
}

// Text is a run of character data, kept exactly as the parser returned it.
type Text struct {
	Data string
}

func (Text) node() {}

// Comment is the content of a markup comment, without delimiters.
type Comment struct {
	Data string
}

func (Comment) node() {}

// Element is a tag with ordered attributes and children.
type Element struct {
	Tag        string
	Attributes []Attribute
	Children   []Node
}

func (*Element) node() {}

// NewElement creates an element. Either slice may be nil.
func NewElement(tag string, attrs []Attribute, children []Node) *Element {
	return &Element{
		Tag:        tag,
		Attributes: attrs,
		Children:   children,
	}
}

// IsText reports whether n is a text node.
func IsText(n Node) bool {
	_, ok := n.(Text)
	return ok
}

// Attribute is a named attribute. Namespace is empty unless the attribute
// was written with a namespace prefix (e.g. xlink:href).
type Attribute struct {
	Name      string
	Namespace string
	Values    []AttributeValue
}

// Attr creates an attribute holding a single simple value.
func Attr(name string, v Value) Attribute {
	return Attribute{Name: name, Values: []AttributeValue{Simple{Value: v}}}
}

// AttrNS creates a namespaced attribute holding a single simple value.
func AttrNS(namespace, name string, v Value) Attribute {
	return Attribute{Name: name, Namespace: namespace, Values: []AttributeValue{Simple{Value: v}}}
}

// StyleAttr creates a style attribute from "property:value" declarations.
func StyleAttr(declarations ...string) Attribute {
	return Attribute{Name: "style", Values: []AttributeValue{Style{Declarations: declarations}}}
}

// AttributeValue is a Simple or a Style.
type AttributeValue interface {
	attributeValue()
}

// Simple is a single scalar attribute value.
type Simple struct {
	Value Value
}

func (Simple) attributeValue() {}

// Style is a list of style declarations, each formatted as "property:value".
type Style struct {
	Declarations []string
}

func (Style) attributeValue() {}
