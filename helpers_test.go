package pagesim_test

import (
	"log/slog"
	"slices"
	"testing"

	"github.com/djdv/go-pagesim"
)

func newProcess(tb testing.TB, pid, pages, capacity int) *pagesim.Process {
	tb.Helper()
	process, err := pagesim.NewProcess(pid, pages, capacity)
	if err != nil {
		tb.Fatal(err)
	}
	return process
}

func newKernel(tb testing.TB, algorithm pagesim.Algorithm, frames pagesim.FrameAllocator) *pagesim.Kernel {
	tb.Helper()
	policy, err := pagesim.NewPolicy(algorithm)
	if err != nil {
		tb.Fatal(err)
	}
	return pagesim.NewKernel(policy, frames, slog.New(slog.DiscardHandler))
}

// replay accesses each page of seq, one tick apart, starting after now.
// It returns the tick of the last access.
func replay(
	tb testing.TB,
	kernel *pagesim.Kernel, process *pagesim.Process,
	now pagesim.Tick, seq ...int,
) pagesim.Tick {
	tb.Helper()
	for _, page := range seq {
		now++
		if _, err := kernel.Access(process, page, now); err != nil {
			tb.Fatalf("access of page %d at tick %d: %v", page, now, err)
		}
	}
	return now
}

func mustPage(tb testing.TB, process *pagesim.Process, vpage int) pagesim.PageTableEntry {
	tb.Helper()
	entry, err := process.Page(vpage)
	if err != nil {
		tb.Fatal(err)
	}
	return entry
}

func mustVerify(tb testing.TB, process *pagesim.Process) {
	tb.Helper()
	if err := process.Verify(); err != nil {
		tb.Fatal(err)
	}
}

func checkResidents(tb testing.TB, process *pagesim.Process, want []int, msg string) {
	tb.Helper()
	got := process.Snapshot().Residents()
	if slices.Equal(got, want) {
		return
	}
	tb.Fatalf("unexpected residents %s"+
		"\n\tgot: %v"+
		"\n\twant: %v",
		msg, got, want)
}

func checkFramePtr(tb testing.TB, process *pagesim.Process, want int) {
	tb.Helper()
	if got := process.FramePtr(); got != want {
		tb.Fatalf("unexpected frame pointer"+
			"\n\tgot: %d"+
			"\n\twant: %d",
			got, want)
	}
}

func checkEqual[T comparable](tb testing.TB, got, want T, what string) {
	tb.Helper()
	if got == want {
		return
	}
	tb.Fatalf("unexpected %s"+
		"\n\tgot: %v"+
		"\n\twant: %v",
		what, got, want)
}
