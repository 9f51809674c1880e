// Package workload generates reproducible sequences of
// virtual page references for driving simulations.
package workload

import (
	"fmt"
	"math/rand"
	"strings"
)

type constError string

const (
	// ErrUnknownPattern may be returned from [Generate].
	ErrUnknownPattern = constError("unknown access pattern")
	// ErrInvalidSize may be returned from [Generate].
	ErrInvalidSize = constError("invalid sequence size")
)

func (errStr constError) Error() string { return string(errStr) }

// Pattern names an access pattern accepted by [Generate].
type Pattern string

const (
	PatternSequential Pattern = "sequential"
	PatternLooping    Pattern = "looping"
	PatternZipf       Pattern = "zipf"
	PatternUniform    Pattern = "uniform"
	PatternWorkingSet Pattern = "working-set"
)

// Patterns returns every pattern accepted by [Generate].
func Patterns() []Pattern {
	return []Pattern{
		PatternSequential, PatternLooping,
		PatternZipf, PatternUniform, PatternWorkingSet,
	}
}

// Generate returns length references over pages virtual pages,
// following pattern with its default parameters.
// The same seed always yields the same sequence.
func Generate(pattern Pattern, pages, length int, seed int64) ([]int, error) {
	const (
		hotRatio    = 0.9 // 90% of references hit the hot set.
		skew        = 1.2
		bias        = 1.0
		changeEvery = 64 // References between working set shifts.
	)
	if pages < 1 || length < 0 {
		return nil, fmt.Errorf(
			"%w: need at least 1 page and a non-negative length, got %d pages and length %d",
			ErrInvalidSize, pages, length)
	}
	var (
		rng     = rand.New(rand.NewSource(seed))
		hotSize = max(pages/4, 1)
	)
	switch Pattern(strings.ToLower(string(pattern))) {
	case PatternSequential:
		return Sequential(pages, length), nil
	case PatternLooping:
		return Looping(rng, hotSize, pages, length, hotRatio), nil
	case PatternZipf:
		return Zipf(rng, pages, length, skew, bias), nil
	case PatternUniform:
		return Uniform(rng, pages, length), nil
	case PatternWorkingSet:
		return WorkingSet(rng, pages, length, hotSize, changeEvery), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, pattern)
	}
}

// Sequential scans pages in order, wrapping around.
func Sequential(pages, length int) []int {
	seq := make([]int, length)
	for i := range seq {
		seq[i] = i % pages
	}
	return seq
}

// Looping sends hotRatio of references to the first hotSize pages
// and spreads the rest over the remaining pages.
func Looping(rng *rand.Rand, hotSize, pages, length int, hotRatio float64) []int {
	hotSize = min(max(1, hotSize), pages)
	var (
		seq      = make([]int, length)
		coldSize = pages - hotSize
	)
	for i := range seq {
		if coldSize <= 0 || rng.Float64() < hotRatio {
			seq[i] = rng.Intn(hotSize)
		} else {
			seq[i] = hotSize + rng.Intn(coldSize)
		}
	}
	return seq
}

// Zipf draws pages from a Zipf distribution, page 0 being the most popular.
// skew must be > 1 and bias >= 1.
func Zipf(rng *rand.Rand, pages, length int, skew, bias float64) []int {
	var (
		seq  = make([]int, length)
		imax = uint64(max(pages, 2) - 1)
		zipf = rand.NewZipf(rng, skew, bias, imax)
	)
	for i := range seq {
		seq[i] = min(int(zipf.Uint64()), pages-1)
	}
	return seq
}

// Uniform draws pages uniformly at random.
func Uniform(rng *rand.Rand, pages, length int) []int {
	seq := make([]int, length)
	for i := range seq {
		seq[i] = rng.Intn(pages)
	}
	return seq
}

// WorkingSet draws references from a window of setSize pages,
// moving the window to a random position every changeEvery references.
// This models a program moving between phases of locality.
func WorkingSet(rng *rand.Rand, pages, length, setSize, changeEvery int) []int {
	var (
		seq  = make([]int, length)
		base int
	)
	setSize = min(max(1, setSize), pages)
	changeEvery = max(1, changeEvery)
	for i := range seq {
		if i%changeEvery == 0 {
			base = rng.Intn(pages - setSize + 1)
		}
		seq[i] = base + rng.Intn(setSize)
	}
	return seq
}
