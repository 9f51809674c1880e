// Package baseline wraps reference cache implementations
// so their miss counts can be compared with the paging policies.
package baseline

import (
	"fmt"

	"github.com/hashicorp/golang-lru/arc/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

type (
	// Cache records a page reference and reports whether it hit.
	// A miss loads the page, evicting another if the cache is full.
	Cache interface {
		Access(page int) (hit bool)
	}
	// Constructor builds a named [Cache] with the given frame capacity.
	Constructor struct {
		New  func(capacity int) (Cache, error)
		Name string
	}

	// ARC is an adaptive replacement cache.
	ARC struct {
		cache *arc.ARCCache[int, struct{}]
	}
	// LRU is an exact least recently used cache.
	LRU struct {
		cache *lru.Cache[int, struct{}]
	}
)

// Constructors returns every baseline implementation.
func Constructors() []Constructor {
	return []Constructor{
		{
			Name: "arc",
			New: func(capacity int) (Cache, error) {
				return NewARC(capacity)
			},
		},
		{
			Name: "lru-reference",
			New: func(capacity int) (Cache, error) {
				return NewLRU(capacity)
			},
		},
	}
}

func NewARC(capacity int) (*ARC, error) {
	cache, err := arc.NewARC[int, struct{}](capacity)
	if err != nil {
		return nil, fmt.Errorf("arc baseline: %w", err)
	}
	return &ARC{cache: cache}, nil
}

func (a *ARC) Access(page int) bool {
	if _, ok := a.cache.Get(page); ok {
		return true
	}
	a.cache.Add(page, struct{}{})
	return false
}

func NewLRU(capacity int) (*LRU, error) {
	cache, err := lru.New[int, struct{}](capacity)
	if err != nil {
		return nil, fmt.Errorf("lru baseline: %w", err)
	}
	return &LRU{cache: cache}, nil
}

func (l *LRU) Access(page int) bool {
	if _, ok := l.cache.Get(page); ok {
		return true
	}
	l.cache.Add(page, struct{}{})
	return false
}

// Misses replays seq against cache and returns the number of misses.
func Misses(cache Cache, seq []int) int {
	var misses int
	for _, page := range seq {
		if !cache.Access(page) {
			misses++
		}
	}
	return misses
}
