package htmlparser

import (
	"strconv"

	"github.com/rgonek/html-view-converter/dom"
)

// parseValue classifies a raw attribute value. Numbers are only recognised
// when formatting them back gives the same text, so "007" and "2.50" stay
// strings and nothing is lost.
func parseValue(raw string) dom.Value {
	switch raw {
	case "true":
		return dom.Bool(true)
	case "false":
		return dom.Bool(false)
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil && strconv.FormatInt(i, 10) == raw {
		return dom.Int(i)
	}
	if !looksDecimal(raw) {
		return dom.String(raw)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && dom.FormatFloat(f) == raw {
		return dom.Float(f)
	}
	return dom.String(raw)
}

// looksDecimal accepts an optional minus sign, digits and exactly one dot
// with digits on both sides.
func looksDecimal(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	dot := -1
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
		case s[i] == '.' && dot < 0:
			dot = i
		default:
			return false
		}
	}
	return dot > 0 && dot < len(s)-1
}
