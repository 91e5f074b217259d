package htmlparser

import "strings"

// selfClosingTags lists elements that never take a closing tag or children.
// HTML void elements come first, then SVG primitives that are childless in
// practice.
var selfClosingTags = map[string]bool{
	"area":    true,
	"base":    true,
	"br":      true,
	"col":     true,
	"command": true,
	"embed":   true,
	"hr":      true,
	"img":     true,
	"input":   true,
	"keygen":  true,
	"link":    true,
	"meta":    true,
	"param":   true,
	"source":  true,
	"track":   true,
	"wbr":     true,

	"image":          true,
	"fedropshadow":   true,
	"feblend":        true,
	"fecolormatrix":  true,
	"fecomposite":    true,
	"feflood":        true,
	"fegaussianblur": true,
	"feimage":        true,
	"femergenode":    true,
	"feoffset":       true,
	"fetile":         true,
	"feturbulence":   true,
}

// IsSelfClosing reports whether tag has no closing form. The check is
// case-insensitive so SVG names like feDropShadow match.
func IsSelfClosing(tag string) bool {
	return selfClosingTags[strings.ToLower(tag)]
}

// svgTagNames restores the camelCase spelling of SVG elements the tokenizer
// leaves lower-cased.
var svgTagNames = map[string]string{
	"fedropshadow": "feDropShadow",
}

func svgTagName(tag string) string {
	if fixed, ok := svgTagNames[tag]; ok {
		return fixed
	}
	return tag
}
