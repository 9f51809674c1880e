package pagesim

import (
	"fmt"
	"strings"
)

type (
	// Policy selects and replaces a victim page
	// once a process holds all of its frames.
	Policy interface {
		// Algorithm identifies the policy.
		Algorithm() Algorithm
		// Replace evicts a resident page of p, loads vpage
		// into the freed frame, and returns the evicted page.
		// p must be at capacity and vpage must be invalid.
		Replace(p *Process, vpage int, now Tick) (victim int)
	}

	// admitter is implemented by policies that track
	// pages loaded into freshly allocated frames.
	admitter interface {
		admit(p *Process, vpage int)
	}

	// Algorithm enumerates the available policies.
	Algorithm int
)

const (
	AlgorithmFIFO Algorithm = iota
	AlgorithmLRU
	AlgorithmClock
	AlgorithmCount
)

var algorithmNames = [...]string{
	AlgorithmFIFO:  "fifo",
	AlgorithmLRU:   "lru",
	AlgorithmClock: "clock",
	AlgorithmCount: "count",
}

// Algorithms returns every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmFIFO, AlgorithmLRU,
		AlgorithmClock, AlgorithmCount,
	}
}

func (a Algorithm) String() string {
	if a >= 0 && int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm accepts an algorithm name, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	for algorithm, known := range algorithmNames {
		if strings.EqualFold(name, known) {
			return Algorithm(algorithm), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// NewPolicy returns the [Policy] implementing algorithm.
func NewPolicy(algorithm Algorithm) (Policy, error) {
	switch algorithm {
	case AlgorithmFIFO:
		return FIFO{}, nil
	case AlgorithmLRU:
		return LRU{}, nil
	case AlgorithmClock:
		return Clock{}, nil
	case AlgorithmCount:
		return Count{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algorithm)
	}
}
