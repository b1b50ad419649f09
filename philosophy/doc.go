/*
Package philosophy tests the "Getting to Philosophy" conjecture on Wikipedia:
clicking the first link in the main text of an article, and repeating the
process for subsequent articles, usually leads to the article on Philosophy.

A link qualifies if it is not in parentheses or italics, and does not point
to an external site, the current page, a bookmark, a help page, a missing
page ("red link") or a page already visited. The walk ends at the
destination, at a page without any qualifying link, when a page is reached
twice, or after a step limit.

	w, _ := philosophy.NewWalker(&philosophy.HTTPFetcher{}, philosophy.Config{})
	result, err := w.Walk(ctx, philosophy.DefaultSource)

See https://en.wikipedia.org/wiki/Wikipedia:Getting_to_Philosophy

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package philosophy

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
