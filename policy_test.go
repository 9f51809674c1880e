package pagesim_test

import (
	"errors"
	"testing"

	"github.com/djdv/go-pagesim"
)

func TestPolicy(t *testing.T) {
	t.Run("parse", parseAlgorithms)
	t.Run("fifo", fifoOrder)
	t.Run("lru", lruOrder)
	t.Run("lru ties", lruTies)
	t.Run("clock", secondChance)
	t.Run("count", countAging)
}

func parseAlgorithms(t *testing.T) {
	t.Parallel()
	for _, algorithm := range pagesim.Algorithms() {
		parsed, err := pagesim.ParseAlgorithm(algorithm.String())
		if err != nil {
			t.Fatal(err)
		}
		checkEqual(t, parsed, algorithm, "parsed algorithm")
		policy, err := pagesim.NewPolicy(algorithm)
		if err != nil {
			t.Fatal(err)
		}
		checkEqual(t, policy.Algorithm(), algorithm, "policy algorithm")
	}
	if parsed, err := pagesim.ParseAlgorithm("CLOCK"); err != nil || parsed != pagesim.AlgorithmClock {
		t.Errorf("expected case insensitive match, got: %v %v", parsed, err)
	}
	if _, err := pagesim.ParseAlgorithm("optimal"); !errors.Is(err, pagesim.ErrUnknownAlgorithm) {
		t.Errorf("expected unknown algorithm error, got: %v", err)
	}
	if _, err := pagesim.NewPolicy(pagesim.Algorithm(42)); !errors.Is(err, pagesim.ErrUnknownAlgorithm) {
		t.Errorf("expected unknown algorithm error, got: %v", err)
	}
}

func fifoOrder(t *testing.T) {
	t.Parallel()
	const (
		a, b, c, d, e = 0, 1, 2, 3, 4
		capacity      = 3
	)
	var (
		process = newProcess(t, 0, 8, capacity)
		kernel  = newKernel(t, pagesim.AlgorithmFIFO, pagesim.NewFreeList(capacity))
	)
	now := replay(t, kernel, process, 0, a, b, c)
	// Re-referencing does not protect a page under FIFO.
	now = replay(t, kernel, process, now, a, b, c, a)
	now = replay(t, kernel, process, now, d)
	checkResidents(t, process, []int{d, b, c}, "after loading d")
	replay(t, kernel, process, now, e)
	checkResidents(t, process, []int{d, e, c}, "after loading e")
	checkEqual(t, kernel.Stats().Evictions, uint64(2), "eviction count")
	mustVerify(t, process)
}

func lruOrder(t *testing.T) {
	t.Parallel()
	var (
		process = newProcess(t, 0, 8, 3)
		kernel  = newKernel(t, pagesim.AlgorithmLRU, pagesim.NewFreeList(3))
	)
	// Ticks: 0@1 1@2 2@3 0@4, so 1 is least recently used.
	now := replay(t, kernel, process, 0, 0, 1, 2, 0)
	now = replay(t, kernel, process, now, 3)
	checkResidents(t, process, []int{0, 3, 2}, "after loading 3")
	checkEqual(t, mustPage(t, process, 3).Timestamp, now, "timestamp of loaded page")
	// Ticks: 0@4 3@5 2@6, so 0 goes next.
	now = replay(t, kernel, process, now, 2, 4)
	checkResidents(t, process, []int{4, 3, 2}, "after loading 4")
	checkEqual(t, mustPage(t, process, 4).Timestamp, now, "timestamp of loaded page")
	mustVerify(t, process)
}

func lruTies(t *testing.T) {
	t.Parallel()
	var (
		process = newProcess(t, 0, 8, 3)
		kernel  = newKernel(t, pagesim.AlgorithmLRU, pagesim.NewFreeList(3))
	)
	const sameTick = 1
	for _, page := range []int{2, 1, 0} {
		if _, err := kernel.Access(process, page, sameTick); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := kernel.Access(process, 3, sameTick+1); err != nil {
		t.Fatal(err)
	}
	// Page 0 was loaded last but has the lowest index.
	checkResidents(t, process, []int{2, 1, 3}, "after tie")
}

func secondChance(t *testing.T) {
	t.Parallel()
	var (
		process = newProcess(t, 0, 8, 3)
		kernel  = newKernel(t, pagesim.AlgorithmClock, pagesim.NewFreeList(3))
	)
	now := replay(t, kernel, process, 0, 0, 1, 2)
	// Every page is referenced: the first sweep clears
	// all bits and the second evicts under the start of the cursor.
	now = replay(t, kernel, process, now, 3)
	checkResidents(t, process, []int{3, 1, 2}, "after full sweep")
	checkFramePtr(t, process, 1)
	checkEqual(t, mustPage(t, process, 3).Used, true, "reference bit of loaded page")
	checkEqual(t, mustPage(t, process, 2).Used, false, "reference bit of swept page")
	// Page 1 is under the cursor but referenced again, so 2 goes instead.
	now = replay(t, kernel, process, now, 1, 4)
	checkResidents(t, process, []int{3, 1, 4}, "after second chance")
	checkFramePtr(t, process, 0)
	checkEqual(t, mustPage(t, process, 1).Used, false, "reference bit of spared page")
	// Page 3 was loaded with its bit set; 1 has used its second chance.
	replay(t, kernel, process, now, 5)
	checkResidents(t, process, []int{3, 5, 4}, "after spent chance")
	mustVerify(t, process)
}

func countAging(t *testing.T) {
	t.Parallel()
	const hot = 0
	var (
		process = newProcess(t, 0, 8, 3)
		kernel  = newKernel(t, pagesim.AlgorithmCount, pagesim.NewFreeList(3))
	)
	now := replay(t, kernel, process, 0, hot, 1, 2)
	now = replay(t, kernel, process, now, hot, hot, hot, hot, hot)
	checkEqual(t, mustPage(t, process, hot).Count, 6, "count of hot page")
	// No page is at zero: the sweep ages every page
	// and falls back to the lowest count seen, page 1.
	now = replay(t, kernel, process, now, 3)
	checkResidents(t, process, []int{hot, 3, 2}, "after fallback")
	checkFramePtr(t, process, 2)
	checkEqual(t, mustPage(t, process, hot).Count, 6/pagesim.CountDecay, "aged count of hot page")
	checkEqual(t, mustPage(t, process, 2).Count, 0, "aged count of idle page")
	checkEqual(t, mustPage(t, process, 3).Count, pagesim.CountReset, "count of loaded page")
	// Page 2 has decayed to zero and sits under the cursor.
	replay(t, kernel, process, now, 4)
	checkResidents(t, process, []int{hot, 3, 4}, "after zero count eviction")
	checkFramePtr(t, process, 0)
	checkEqual(t, mustPage(t, process, 4).Used, true, "reference bit of loaded page")
	mustVerify(t, process)
}
