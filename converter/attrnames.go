package converter

import "strings"

// reservedAttributeNames collide with keywords of the target language and
// are emitted as raw identifiers.
var reservedAttributeNames = map[string]bool{
	"as":    true,
	"async": true,
	"for":   true,
	"in":    true,
	"loop":  true,
	"type":  true,
}

// htmlAttributeNames are the HTML attributes that have a dedicated
// attribute function.
var htmlAttributeNames = []string{
	"accept", "accept-charset", "accesskey", "action", "align", "allow", "alt", "as", "async",
	"autocapitalize", "autocomplete", "autofocus", "autoplay", "background", "bgcolor", "border",
	"buffered", "capture", "challenge", "charset", "checked", "cite", "class", "code", "codebase",
	"color", "cols", "colspan", "content", "contenteditable", "contextmenu", "controls", "coords",
	"crossorigin", "csp", "data", "datetime", "decoding", "default", "defer", "dir", "dirname",
	"disabled", "download", "draggable", "dropzone", "enctype", "enterkeyhint", "for", "form",
	"formaction", "formenctype", "formmethod", "formnovalidate", "formtarget", "headers", "height",
	"hidden", "high", "href", "hreflang", "http-equiv", "icon", "id", "importance", "integrity",
	"inputmode", "ismap", "itemprop", "keytype", "kind", "label", "lang", "language", "list",
	"loading", "loop", "low", "manifest", "max", "maxlength", "media", "method", "min",
	"minlength", "multiple", "muted", "name", "novalidate", "open", "optimum", "pattern", "ping",
	"placeholder", "poster", "preload", "readonly", "referrerpolicy", "rel", "required",
	"reversed", "role", "rows", "rowspan", "sandbox", "scope", "selected", "shape", "size",
	"sizes", "slot", "span", "spellcheck", "src", "srcdoc", "srclang", "srcset", "start", "step",
	"style", "summary", "tabindex", "target", "title", "translate", "type", "usemap", "value",
	"width", "wrap",
}

// svgAttributeNames are the SVG presentation and geometry attributes that
// have a dedicated attribute function.
var svgAttributeNames = []string{
	"alignment-baseline", "baseline-shift", "clip-path", "clip-rule", "clipPathUnits", "cx", "cy",
	"d", "dominant-baseline", "dx", "dy", "fill", "fill-opacity", "fill-rule", "filter",
	"filterUnits", "flood-color", "flood-opacity", "font-family", "font-size", "font-style",
	"font-weight", "fr", "fx", "fy", "gradientTransform", "gradientUnits", "in", "in2",
	"letter-spacing", "marker-end", "marker-mid", "marker-start", "mask", "offset", "opacity",
	"operator", "pathLength", "patternUnits", "points", "preserveAspectRatio", "r", "result", "rx",
	"ry", "stdDeviation", "stop-color", "stop-opacity", "stroke", "stroke-dasharray",
	"stroke-dashoffset", "stroke-linecap", "stroke-linejoin", "stroke-miterlimit",
	"stroke-opacity", "stroke-width", "text-anchor", "transform", "viewBox", "visibility",
	"x", "x1", "x2", "xmlns", "y", "y1", "y2",
}

var attributeFunctions = buildAttributeFunctions()

func buildAttributeFunctions() map[string]string {
	m := make(map[string]string, len(htmlAttributeNames)+len(svgAttributeNames))
	for _, names := range [][]string{htmlAttributeNames, svgAttributeNames} {
		for _, name := range names {
			m[name] = attributeIdent(name)
		}
	}
	return m
}

// attributeIdent turns an attribute name into an identifier: hyphens become
// underscores and reserved words get the raw identifier prefix.
func attributeIdent(name string) string {
	if reservedAttributeNames[name] {
		return "r#" + name
	}
	return strings.ReplaceAll(name, "-", "_")
}

// AttributeFunction returns the function that sets the attribute name, or
// false when the attribute has to go through the generic attr call.
func AttributeFunction(name string) (string, bool) {
	fn, ok := attributeFunctions[name]
	return fn, ok
}
