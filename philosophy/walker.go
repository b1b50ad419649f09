package philosophy

import (
	"context"
	"fmt"
	"net/url"

	"github.com/guiguan/caster"
	"github.com/npillmayer/bstmap"
)

const (
	// DefaultSource is the article a walk starts from by default.
	DefaultSource = "https://en.wikipedia.org/wiki/Java_(programming_language)"
	// DefaultDestination is the article a walk tries to reach by default.
	DefaultDestination = "https://en.wikipedia.org/wiki/Philosophy"
	// DefaultLimit is the default maximum number of pages visited.
	DefaultLimit = 30
)

// Config configures a Walker. Zero fields are replaced by defaults.
type Config struct {
	Limit       int    // maximum number of pages to visit
	Destination string // URL of the article to reach
	// SkipVisited treats links to pages already visited as invalid. Without
	// it, following such a link ends the walk with ErrLoop.
	SkipVisited bool
}

func (cfg Config) normalized() Config {
	if cfg.Limit == 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.Destination == "" {
		cfg.Destination = DefaultDestination
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Limit < 1 {
		return fmt.Errorf("%w: limit must be positive, is %d", ErrInvalidConfig, cfg.Limit)
	}
	if _, err := url.Parse(cfg.Destination); err != nil {
		return fmt.Errorf("%w: destination: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Hop is published for every page a walk arrives at.
type Hop struct {
	Step int
	URL  string
}

// Result describes a finished walk.
type Result struct {
	Path    []string // pages visited, starting with the source
	Reached bool     // true if the last page is the destination
}

// Walker follows first links from article to article.
//
// A Walker is good for a single call to Walk; subscribers are released when
// the walk ends.
type Walker struct {
	fetcher Fetcher
	cfg     Config
	dest    string
	cast    *caster.Caster // broadcaster for hops
}

// NewWalker creates a walker loading pages with fetcher.
func NewWalker(fetcher Fetcher, cfg Config) (*Walker, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("%w: fetcher is required", ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	dest, _ := CanonicalString(cfg.Destination)
	return &Walker{
		fetcher: fetcher,
		cfg:     cfg,
		dest:    dest,
		cast:    caster.New(nil),
	}, nil
}

// Subscribe returns a channel receiving a Hop for every page the walk
// arrives at. The channel is closed when the walk ends or ctx is done.
func (w *Walker) Subscribe(ctx context.Context) <-chan Hop {
	out := make(chan Hop, w.cfg.Limit+1)
	sub, ok := w.cast.Sub(ctx, uint(w.cfg.Limit+1))
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for msg := range sub {
			if hop, ok := msg.(Hop); ok {
				out <- hop
			}
		}
	}()
	return out
}

// Walk starts at source and follows the first valid link of every page
// until it reaches the destination. It returns the path walked so far
// together with ErrLoop, ErrNoLink, ErrLimitExceeded or a fetch error if
// the destination cannot be reached.
func (w *Walker) Walk(ctx context.Context, source string) (Result, error) {
	defer w.cast.Close()
	var result Result
	visited := bstmap.New[string, int]() // URL → step
	isVisited := func(link string) bool {
		ok, _ := visited.ContainsKey(link)
		return ok
	}
	current, err := url.Parse(source)
	if err != nil {
		return result, fmt.Errorf("%w: source: %v", ErrInvalidConfig, err)
	}
	for step := 0; step < w.cfg.Limit; step++ {
		link := Canonical(current)
		if isVisited(link) {
			T().Infof("philosophy: already visited %s", link)
			return result, fmt.Errorf("%w: %s", ErrLoop, link)
		}
		visited.Put(link, step)
		result.Path = append(result.Path, link)
		w.cast.Pub(Hop{Step: step, URL: link})
		T().Infof("philosophy: [%2d] %s", step, link)
		if link == w.dest {
			result.Reached = true
			return result, nil
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}
		paras, err := w.fetcher.Fetch(ctx, link)
		if err != nil {
			return result, err
		}
		var filter func(string) bool
		if w.cfg.SkipVisited {
			filter = isVisited
		}
		next, ok := FirstValidLink(paras, current, filter)
		if !ok {
			return result, fmt.Errorf("%w: %s", ErrNoLink, link)
		}
		if current, err = url.Parse(next); err != nil {
			return result, fmt.Errorf("%w: %s: %v", ErrNoLink, next, err)
		}
	}
	return result, fmt.Errorf("%w: %d pages", ErrLimitExceeded, w.cfg.Limit)
}
