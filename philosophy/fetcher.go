package philosophy

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fetcher loads an article and returns the paragraphs of its main text.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) ([]*html.Node, error)
}

// DefaultMinInterval is the minimum delay between two requests of an
// HTTPFetcher, to be polite to Wikipedia's servers.
const DefaultMinInterval = time.Second

// HTTPFetcher fetches articles over HTTP. The zero value uses
// http.DefaultClient and DefaultMinInterval.
type HTTPFetcher struct {
	Client      *http.Client
	MinInterval time.Duration // negative for no delay
	UserAgent   string

	mu   sync.Mutex
	last time.Time // time of the last request
}

// Fetch loads pageURL and extracts its content paragraphs.
func (f *HTTPFetcher) Fetch(ctx context.Context, pageURL string) ([]*html.Node, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, pageURL, err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	T().Debugf("philosophy: GET %s", pageURL)
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, pageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, pageURL, resp.Status)
	}
	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, pageURL, err)
	}
	return Paragraphs(doc), nil
}

func (f *HTTPFetcher) wait(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	interval := f.MinInterval
	if interval == 0 {
		interval = DefaultMinInterval
	}
	if delay := interval - time.Since(f.last); !f.last.IsZero() && delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	f.last = time.Now()
	return nil
}

// ContentID is the id of the element holding an article's main text.
const ContentID = "mw-content-text"

// Paragraphs returns all <p> elements below the main content element of a
// parsed article, in document order. Pages without a content element yield
// no paragraphs.
func Paragraphs(doc *html.Node) []*html.Node {
	content := findByID(doc, ContentID)
	if content == nil {
		return nil
	}
	var paras []*html.Node
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.P {
				paras = append(paras, c)
			}
			collect(c)
		}
	}
	collect(content)
	return paras
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
