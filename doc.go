// Package pagesim implements the page replacement core of a
// virtual memory simulator.
//
// A [Kernel] services memory references for a [Process].
// Each process owns a page table and may hold a fixed number of
// physical frames, taken from a shared [FrameAllocator].
// Once a process holds all of its frames, page faults are
// resolved by the kernel's [Policy], which picks a victim page
// and hands its frame to the faulting page.
//
// The simulation is single stepped and deterministic.
// Time is a logical clock ([Tick]) supplied with every access;
// replaying the same references with the same ticks
// always produces the same state.
//
// Glossary and invariants:
//
//   - Page fault
//
//     A reference to a virtual page with no resident frame.
//
//   - Frame
//
//     A physical memory unit holding exactly one virtual page.
//
//   - Victim
//
//     The resident page chosen for eviction to make room for a faulting page.
//
//   - Frame mapping
//
//     The frames of valid page table entries are a bijection
//     onto the process's allocated frames.
//     No two valid pages share a frame and no allocated frame is unmapped.
//
//   - Allocated frames
//
//     Grow until the process's capacity is reached and never shrink.
//     After that only the page held by each frame changes.
//
//   - Frame pointer
//
//     A cursor into the allocated frames, shared by [Clock] and [Count].
//
// Policies:
//
//   - [FIFO]
//
//     Evicts the page loaded earliest. References do not reorder pages.
//
//   - [LRU]
//
//     Evicts the page with the oldest access tick.
//
//   - [Clock]
//
//     Second chance. Referenced pages have their bit cleared and are skipped
//     once; the first unreferenced page under the cursor is evicted.
//
//   - [Count]
//
//     Aging. Usage counters are divided as the cursor passes them,
//     so pages without sustained use decay towards zero and are evicted first.
//
// Failures:
//
// A fault that needs a fresh frame when the allocator is empty
// returns [ErrNoFreeFrame]; the page stays invalid and the
// simulation may continue.
// A frame with no valid page table entry means the bookkeeping
// is broken; policies panic with [ErrFrameNotMapped].
// Building with the `pagesim_debug` tag verifies the frame mapping
// after every replacement.
package pagesim
