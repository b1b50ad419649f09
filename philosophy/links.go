package philosophy

import (
	"net/url"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FirstValidLink searches paragraphs in document order for the first
// qualifying link and returns its absolute URL. Relative links are resolved
// against page. visited may be nil; otherwise links for which it returns true
// are skipped.
func FirstValidLink(paragraphs []*html.Node, page *url.URL, visited func(string) bool) (string, bool) {
	for _, p := range paragraphs {
		s := linkScanner{page: page, visited: visited, para: p}
		if link, ok := s.scan(p); ok {
			return link, true
		}
	}
	return "", false
}

// linkScanner walks a single paragraph, keeping track of the nesting depth
// of parentheses in the text seen so far.
type linkScanner struct {
	page    *url.URL
	visited func(string) bool
	para    *html.Node
	parens  int
}

func (s *linkScanner) scan(n *html.Node) (string, bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			s.countParens(c.Data)
		case html.ElementNode:
			if c.DataAtom == atom.A {
				if link, ok := s.validate(c); ok {
					return link, true
				}
			}
		}
		if link, ok := s.scan(c); ok {
			return link, true
		}
	}
	return "", false
}

func (s *linkScanner) countParens(text string) {
	for _, r := range text {
		switch r {
		case '(':
			s.parens++
		case ')':
			if s.parens == 0 {
				T().Errorf("philosophy: warning: unbalanced parentheses")
			}
			s.parens--
		}
	}
}

// validate checks a link element and returns its absolute URL if it qualifies.
func (s *linkScanner) validate(a *html.Node) (string, bool) {
	href := strings.TrimSpace(attr(a, "href"))
	switch {
	case href == "":
		return "", false
	case strings.HasPrefix(href, "#"): // bookmark
		return "", false
	case strings.HasPrefix(href, "/wiki/Help:"):
		return "", false
	case s.parens != 0:
		return "", false
	case s.isItalic(a):
		return "", false
	case isRedLink(a):
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		T().Debugf("philosophy: skipping malformed link %q", href)
		return "", false
	}
	abs := ref
	if s.page != nil {
		abs = s.page.ResolveReference(ref)
		if !strings.EqualFold(abs.Host, s.page.Host) {
			return "", false // external
		}
	}
	link := Canonical(abs)
	if s.page != nil && link == Canonical(s.page) {
		return "", false // self link
	}
	if s.visited != nil && s.visited(link) {
		return "", false
	}
	return link, true
}

// isItalic reports whether a is nested in <i> or <em> within the paragraph.
func (s *linkScanner) isItalic(a *html.Node) bool {
	for n := a; n != nil && n != s.para; n = n.Parent {
		if n.Type == html.ElementNode && (n.DataAtom == atom.I || n.DataAtom == atom.Em) {
			return true
		}
	}
	return false
}

// isRedLink reports whether a points to a page which does not exist yet.
// Wikipedia marks these links with class "new".
func isRedLink(a *html.Node) bool {
	return slices.Contains(strings.Fields(attr(a, "class")), "new")
}

// Canonical returns the string form of u without fragment, used to compare
// article URLs.
func Canonical(u *url.URL) string {
	c := *u
	c.Fragment = ""
	c.RawFragment = ""
	return c.String()
}

// CanonicalString parses and canonicalizes rawURL.
func CanonicalString(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	return Canonical(u), nil
}
