package converter

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rgonek/html-view-converter/htmlparser"
)

var validate = validator.New()

// Grammar selects the shape of the generated code.
type Grammar string

const (
	// GrammarFunction emits nested calls: div(vec![attrs],vec![children]).
	GrammarFunction Grammar = "function"
	// GrammarMacro emits tag literals inside a node! { ... } block.
	GrammarMacro Grammar = "macro"
)

// ContainerStyle selects the list syntax of the function grammar.
type ContainerStyle string

const (
	ContainerVec   ContainerStyle = "vec"
	ContainerArray ContainerStyle = "array"
)

// Config holds all converter configuration options.
type Config struct {
	Grammar   Grammar           `json:"grammar,omitempty" yaml:"grammar,omitempty" validate:"oneof=function macro"`
	Container ContainerStyle    `json:"container,omitempty" yaml:"container,omitempty" validate:"oneof=vec array"`
	Parser    htmlparser.Config `json:"parser,omitempty" yaml:"parser,omitempty"`
}

// NewConfig maps the two published switches onto a Config. useArray has no
// effect together with useMacro.
func NewConfig(useMacro, useArray bool) Config {
	cfg := Config{
		Grammar:   GrammarFunction,
		Container: ContainerVec,
	}
	if useMacro {
		cfg.Grammar = GrammarMacro
	}
	if useArray {
		cfg.Container = ContainerArray
	}
	return cfg
}

func (c Config) applyDefaults() Config {
	if c.Grammar == "" {
		c.Grammar = GrammarFunction
	}
	if c.Container == "" {
		c.Container = ContainerVec
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return c.Parser.Validate()
}

// listTokens returns the opening and closing tokens of an attribute or
// children list.
func (c Config) listTokens() (string, string) {
	if c.Container == ContainerArray {
		return "[", "]"
	}
	return "vec![", "]"
}
