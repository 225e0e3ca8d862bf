// Package text classifies text for layout: the base direction of a paragraph
// and the east asian width of its runes.
package text

import (
	"sync"

	"github.com/golang/groupcache/lru"
	"golang.org/x/text/unicode/bidi"
)

// Dir is the base direction of a text.
type Dir int

const (
	Neutral Dir = iota // no strong character
	LTR
	RTL
)

func (d Dir) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		return "Neutral"
	}
}

// Direction returns the direction of the first strong character in s,
// following rules P2 and P3 of the Unicode bidirectional algorithm.
// Unlike androidutil.IsRTL, every right to left script is recognized.
func Direction(s string) Dir {
	for len(s) > 0 {
		p, size := bidi.LookupString(s)
		switch p.Class() {
		case bidi.L:
			return LTR
		case bidi.R, bidi.AL:
			return RTL
		}
		if size == 0 {
			break
		}
		s = s[size:]
	}
	return Neutral
}

const DefaultDirectionCacheSize = 128

// DirectionCache memorizes Direction for recently seen texts.
// Concurrent use is OK.
type DirectionCache struct {
	mu    sync.Mutex
	cache *lru.Cache // under mutex because lru is not safe for concurrent use.
}

// NewDirectionCache holds at most size entries.
// use DefaultDirectionCacheSize if size <= 0.
func NewDirectionCache(size int) *DirectionCache {
	if size <= 0 {
		size = DefaultDirectionCacheSize
	}
	return &DirectionCache{cache: lru.New(size)}
}

func (c *DirectionCache) Direction(s string) Dir {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.cache.Get(s); ok {
		return v.(Dir)
	}
	d := Direction(s)
	c.cache.Add(s, d)
	return d
}

// Len returns number of cached entries.
func (c *DirectionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Len()
}
