package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rgonek/html-view-converter/converter"
	"github.com/rgonek/html-view-converter/dom"
	"github.com/rgonek/html-view-converter/source"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	fromHTML     = "html"
	fromMarkdown = "markdown"
)

type options struct {
	configPath     string
	from           string
	output         string
	selector       string
	macro          bool
	array          bool
	minify         bool
	keepComments   bool
	keepWhitespace bool
	dumpTree       bool
	maxDepth       int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "hvc [file]",
		Short: "Convert HTML to view code",
		Long: `hvc reads HTML (or Markdown with --from markdown) from a file or stdin and prints
the equivalent view-building code, as nested function calls or as a node! macro block.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.macro, "macro", false, "Emit the node! macro grammar")
	f.BoolVar(&opts.array, "array", false, "Use [..] instead of vec![..] for lists (function grammar only)")
	f.StringVar(&opts.configPath, "config", "", "YAML config file")
	f.StringVar(&opts.selector, "select", "", "Convert only the elements matching a CSS selector")
	f.BoolVar(&opts.minify, "minify", false, "Minify the markup before parsing")
	f.BoolVar(&opts.keepComments, "keep-comments", false, "Keep comment nodes")
	f.BoolVar(&opts.keepWhitespace, "keep-whitespace", false, "Keep whitespace-only text nodes")
	f.IntVar(&opts.maxDepth, "max-depth", 0, "Reject markup nested deeper than this (0: no limit)")
	f.StringVar(&opts.from, "from", fromHTML, "Input format: html|markdown")
	f.BoolVar(&opts.dumpTree, "dump-tree", false, "Print the parsed tree to stderr")
	f.StringVarP(&opts.output, "output", "o", "", "Write the result to a file instead of stdout")

	return cmd
}

func loadConfigFile(path string) (converter.Config, error) {
	if path == "" {
		return converter.Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return converter.Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg converter.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return converter.Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfig applies the flags that were set explicitly on top of the
// config file.
func resolveConfig(opts *options, changed func(name string) bool) (converter.Config, error) {
	cfg, err := loadConfigFile(opts.configPath)
	if err != nil {
		return converter.Config{}, err
	}

	if changed("macro") {
		cfg.Grammar = converter.GrammarFunction
		if opts.macro {
			cfg.Grammar = converter.GrammarMacro
		}
	}
	if changed("array") {
		cfg.Container = converter.ContainerVec
		if opts.array {
			cfg.Container = converter.ContainerArray
		}
	}
	if changed("select") {
		cfg.Parser.Selector = opts.selector
	}
	if changed("minify") {
		cfg.Parser.Minify = opts.minify
	}
	if changed("keep-comments") {
		cfg.Parser.KeepComments = opts.keepComments
	}
	if changed("keep-whitespace") {
		cfg.Parser.KeepWhitespace = opts.keepWhitespace
	}
	if changed("max-depth") {
		cfg.Parser.MaxDepth = opts.maxDepth
	}

	return cfg, nil
}

func readInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

// prepareMarkup decodes data and, for Markdown input, renders it to HTML.
func prepareMarkup(data []byte, from string) (string, error) {
	text, err := source.Decode(data, "")
	if err != nil {
		return "", err
	}

	switch strings.ToLower(strings.TrimSpace(from)) {
	case "", fromHTML:
		return text, nil
	case fromMarkdown:
		return source.Markdown([]byte(text))
	default:
		return "", fmt.Errorf("unknown input format %q (allowed: html, markdown)", from)
	}
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := resolveConfig(opts, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	conv, err := converter.New(cfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	data, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	markup, err := prepareMarkup(data, opts.from)
	if err != nil {
		return err
	}

	nodes, err := conv.Parse(markup)
	if err != nil {
		return err
	}
	if opts.dumpTree {
		fmt.Fprint(cmd.ErrOrStderr(), dom.Dump(converter.Root(nodes)))
	}

	code, err := conv.ConvertNodes(nodes)
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(code+"\n"), 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), code)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
