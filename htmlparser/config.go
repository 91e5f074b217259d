package htmlparser

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config controls how markup is turned into a node forest.
type Config struct {
	// KeepComments keeps comment nodes. They are dropped by default.
	KeepComments bool `json:"keepComments,omitempty" yaml:"keep_comments,omitempty"`
	// KeepWhitespace keeps text nodes that contain only whitespace.
	KeepWhitespace bool `json:"keepWhitespace,omitempty" yaml:"keep_whitespace,omitempty"`
	// Minify minifies the markup before parsing.
	Minify bool `json:"minify,omitempty" yaml:"minify,omitempty"`
	// Selector restricts the forest to the elements matching a CSS selector.
	Selector string `json:"selector,omitempty" yaml:"selector,omitempty"`
	// MaxDepth rejects trees nested deeper than this many elements. 0 means no limit.
	MaxDepth int `json:"maxDepth,omitempty" yaml:"max_depth,omitempty" validate:"min=0"`
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid parser config: %w", err)
	}
	if strings.TrimSpace(c.Selector) != "" {
		if _, err := cascadia.Compile(c.Selector); err != nil {
			return fmt.Errorf("invalid selector %q: %w", c.Selector, err)
		}
	}
	return nil
}
