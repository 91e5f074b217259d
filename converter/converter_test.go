package converter

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/rgonek/html-view-converter/dom"
	"github.com/rgonek/html-view-converter/htmlparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func newTestConverter(t testing.TB, cfg Config) *Converter {
	t.Helper()

	conv, err := New(cfg)
	require.NoError(t, err)

	return conv
}

// goldenVariants maps the golden file suffix to the config it is rendered with.
var goldenVariants = map[string]Config{
	"function": NewConfig(false, false),
	"array":    NewConfig(false, true),
	"macro":    NewConfig(true, false),
}

func TestGoldenFiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hvc.converter")
	defer teardown()

	inputs, err := filepath.Glob(filepath.Join("testdata", "*.html"))
	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	for _, path := range inputs {
		input, err := os.ReadFile(path)
		require.NoError(t, err)

		for variant, cfg := range goldenVariants {
			goldenPath := strings.TrimSuffix(path, ".html") + "." + variant + ".golden"

			t.Run(filepath.Base(goldenPath), func(t *testing.T) {
				conv := newTestConverter(t, cfg)
				output, err := conv.Convert(string(input))
				require.NoError(t, err)

				if *update {
					require.NoError(t, os.WriteFile(goldenPath, []byte(output), 0644))
					t.Logf("Updated golden file: %s", goldenPath)
					return
				}

				expected, err := os.ReadFile(goldenPath)
				if os.IsNotExist(err) {
					t.Fatalf("Golden file missing: %s. Run with -update to create it.", goldenPath)
				}
				require.NoError(t, err)

				assert.Equal(t, string(expected), output)
			})
		}
	}
}

func TestMultiRootWrapping(t *testing.T) {
	conv := newTestConverter(t, Config{})

	t.Run("single root is not wrapped", func(t *testing.T) {
		out, err := conv.Convert(`<section><p>a</p></section>`)
		require.NoError(t, err)
		assert.Equal(t, "section(vec![],vec![\n    p(vec![],vec![text(\"a\")]),\n])", out)
	})

	t.Run("siblings are wrapped in order", func(t *testing.T) {
		out, err := conv.Convert(`<b>1</b><i>2</i><u>3</u>`)
		require.NoError(t, err)
		assert.Equal(t, "div(vec![],vec![\n"+
			"    b(vec![],vec![text(\"1\")]),\n"+
			"    i(vec![],vec![text(\"2\")]),\n"+
			"    u(vec![],vec![text(\"3\")]),\n"+
			"])", out)
	})

	t.Run("top-level text counts as a root", func(t *testing.T) {
		out, err := conv.Convert(`hello <b>world</b>`)
		require.NoError(t, err)
		assert.Equal(t, "div(vec![],vec![\n"+
			"    text(\"hello \"),\n"+
			"    b(vec![],vec![text(\"world\")]),\n"+
			"])", out)
	})
}

func TestRoot(t *testing.T) {
	empty := Root(nil)
	assert.Equal(t, dom.NewElement("html", nil, nil), empty)

	only := dom.NewElement("p", nil, nil)
	assert.Same(t, only, Root([]dom.Node{only}))

	a, b := dom.Text{Data: "a"}, dom.NewElement("b", nil, nil)
	wrapped, ok := Root([]dom.Node{a, b}).(*dom.Element)
	require.True(t, ok)
	assert.Equal(t, "div", wrapped.Tag)
	assert.Empty(t, wrapped.Attributes)
	assert.Equal(t, []dom.Node{a, b}, wrapped.Children)
}

type stubParser struct {
	nodes []dom.Node
	err   error
}

func (s stubParser) Parse(string) ([]dom.Node, error) { return s.nodes, s.err }

func (s stubParser) IsSelfClosing(tag string) bool { return htmlparser.IsSelfClosing(tag) }

func TestConvertParseError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hvc.converter")
	defer teardown()

	cause := &htmlparser.ParseError{Msg: "unexpected end of input"}
	conv, err := NewWithParser(Config{}, stubParser{err: cause})
	require.NoError(t, err)

	out, err := conv.Convert("<div")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.True(t, errors.Is(err, ErrParse))
	assert.False(t, errors.Is(err, ErrWrite))

	var parseErr *htmlparser.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "unexpected end of input", parseErr.Msg)
	assert.Equal(t, "parse failed: unexpected end of input", err.Error())
}

func TestConvertMaxDepthIsParseError(t *testing.T) {
	conv := newTestConverter(t, Config{Parser: htmlparser.Config{MaxDepth: 2}})

	_, err := conv.Convert("<div><div><div>x</div></div></div>")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

type failingWriter struct {
	allowed int
	written strings.Builder
}

var errSinkFull = errors.New("sink full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.written.Len()+len(p) > w.allowed {
		return 0, errSinkFull
	}
	return w.written.Write(p)
}

func TestConvertToWriteError(t *testing.T) {
	conv := newTestConverter(t, Config{})

	w := &failingWriter{allowed: 5}
	err := conv.ConvertTo(w, "<p>hello</p>")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrite))
	assert.True(t, errors.Is(err, errSinkFull))
	assert.Empty(t, w.written.String(), "a failed conversion writes nothing")
}

func TestConvertTo(t *testing.T) {
	conv := newTestConverter(t, Config{})

	var sb strings.Builder
	require.NoError(t, conv.ConvertTo(&sb, "<p>hello</p>"))
	assert.Equal(t, `p(vec![],vec![text("hello")])`, sb.String())
}

func TestConvertToParseErrorWritesNothing(t *testing.T) {
	conv, err := NewWithParser(Config{}, stubParser{err: errors.New("boom")})
	require.NoError(t, err)

	var sb strings.Builder
	err = conv.ConvertTo(&sb, "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
	assert.Empty(t, sb.String())
}

func TestRenderWriteError(t *testing.T) {
	conv := newTestConverter(t, Config{})
	tree := dom.NewElement("div", nil, []dom.Node{
		dom.NewElement("p", nil, []dom.Node{dom.Text{Data: "a long enough paragraph"}}),
	})

	w := &failingWriter{allowed: 12}
	err := conv.Render(w, tree, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrWrite))

	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, ErrWrite, convErr.Kind)
	assert.LessOrEqual(t, w.written.Len(), 12)
}

func TestConvertNodesUsesStubTree(t *testing.T) {
	tree := []dom.Node{
		dom.NewElement("label", []dom.Attribute{dom.Attr("for", dom.String("name"))}, []dom.Node{dom.Text{Data: "Name"}}),
		dom.NewElement("input", []dom.Attribute{dom.Attr("type", dom.String("text")), dom.Attr("id", dom.String("name"))}, nil),
	}
	conv, err := NewWithParser(Config{}, stubParser{nodes: tree})
	require.NoError(t, err)

	out, err := conv.Convert("ignored")
	require.NoError(t, err)
	assert.Equal(t, "div(vec![],vec![\n"+
		"    label(vec![r#for(\"name\"),],vec![text(\"Name\")]),\n"+
		"    input(vec![r#type(\"text\"),id(\"name\"),],vec![]),\n"+
		"])", out)
}

func TestConvertDeterministic(t *testing.T) {
	input, err := os.ReadFile(filepath.Join("testdata", "document.html"))
	require.NoError(t, err)

	for variant, cfg := range goldenVariants {
		t.Run(variant, func(t *testing.T) {
			conv := newTestConverter(t, cfg)
			first, err := conv.Convert(string(input))
			require.NoError(t, err)
			for i := 0; i < 5; i++ {
				again, err := conv.Convert(string(input))
				require.NoError(t, err)
				assert.Equal(t, first, again)
			}
		})
	}
}

func TestConvertSelector(t *testing.T) {
	conv := newTestConverter(t, Config{
		Grammar: GrammarMacro,
		Parser:  htmlparser.Config{Selector: "#app"},
	})

	out, err := conv.Convert(`<html><body><nav>skip</nav><main id="app"><h1>Title</h1></main></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "node! {\n"+
		"    <main id=\"app\">\n"+
		"        <h1>\"Title\"</h1>\n"+
		"    </main>\n"+
		"}", out)
}
