package htmlparser

import (
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

const htmlMediaType = "text/html"

var (
	minifier     *minify.M
	minifierOnce sync.Once
)

// getMinifier returns the shared minifier. Document tags, end tags, quotes
// and default attribute values are kept so the tree shape survives.
func getMinifier() *minify.M {
	minifierOnce.Do(func() {
		minifier = minify.New()
		minifier.Add(htmlMediaType, &html.Minifier{
			KeepDocumentTags:    true,
			KeepEndTags:         true,
			KeepQuotes:          true,
			KeepDefaultAttrVals: true,
		})
	})
	return minifier
}

func minifyMarkup(markup string) (string, error) {
	return getMinifier().String(htmlMediaType, markup)
}
