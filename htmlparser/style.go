package htmlparser

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

// parseStyle splits an inline style attribute into "property:value"
// declarations in source order. Empty declarations are dropped.
func parseStyle(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	// The declaration parser only finalises a declaration at its terminator.
	if !strings.HasSuffix(text, ";") {
		text += ";"
	}

	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		tracer().Debugf("style %q: %v; splitting by hand", text, err)
		return splitStyle(text)
	}

	out := make([]string, 0, len(decls))
	for _, d := range decls {
		if d.Property == "" {
			continue
		}
		decl := d.Property + ":" + d.Value
		if d.Important {
			decl += " !important"
		}
		out = append(out, decl)
	}
	return out
}

func splitStyle(text string) []string {
	var out []string
	for _, part := range strings.Split(text, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		out = append(out, prop+":"+strings.TrimSpace(value))
	}
	return out
}
