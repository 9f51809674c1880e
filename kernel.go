package pagesim

import (
	"errors"
	"log/slog"
)

// Kernel services memory references for processes,
// recording each access and resolving page faults
// with a fixed [Policy].
// Concurrent access must be guarded by the caller.
// Constructed by [NewKernel].
type Kernel struct {
	policy Policy
	frames FrameAllocator
	logger *slog.Logger
	stats  Stats
}

// NewKernel creates a kernel which takes fresh frames from frames
// and replaces pages with policy.
// A nil logger is replaced by [slog.Default].
func NewKernel(policy Policy, frames FrameAllocator, logger *slog.Logger) *Kernel {
	if logger == nil {
		logger = slog.Default()
	}
	return &Kernel{
		policy: policy,
		frames: frames,
		logger: logger,
	}
}

// Policy returns the replacement policy in use.
func (k *Kernel) Policy() Policy { return k.policy }

// Stats returns the counters accumulated so far.
func (k *Kernel) Stats() Stats { return k.stats }

// Access performs one memory reference of vpage at time now.
// The access is recorded first; if the page was not resident
// the fault is then handled.
// Hit reports whether the page was resident before the access.
// An error wrapping [ErrNoFreeFrame] leaves the page invalid
// but does not affect later accesses.
func (k *Kernel) Access(p *Process, vpage int, now Tick) (hit bool, err error) {
	if err := k.RecordAccess(p, vpage, now); err != nil {
		return false, err
	}
	k.stats.Accesses++
	if p.pageTable[vpage].Valid {
		k.stats.Hits++
		return true, nil
	}
	k.stats.Faults++
	return false, k.HandleFault(p, vpage, now)
}

// RecordAccess updates the replacement metadata of vpage.
// It must be called for every reference, resident or not.
func (k *Kernel) RecordAccess(p *Process, vpage int, now Tick) error {
	if err := p.checkPage(vpage); err != nil {
		return err
	}
	entry := &p.pageTable[vpage]
	entry.Used = true
	entry.Timestamp = now
	entry.Count++
	return nil
}

// HandleFault makes vpage resident.
// While the process is below its frame capacity
// a free frame is acquired; otherwise the policy replaces a page.
// Faults on resident pages are ignored.
func (k *Kernel) HandleFault(p *Process, vpage int, now Tick) error {
	if err := p.checkPage(vpage); err != nil {
		return err
	}
	if p.pageTable[vpage].Valid {
		return nil
	}
	if !p.atCapacity() {
		return k.addPageFrame(p, vpage)
	}
	victim := k.policy.Replace(p, vpage, now)
	k.stats.Evictions++
	if debugging {
		err := p.Verify()
		assert(err == nil, "replacement broke the frame mapping")
	}
	k.logger.Debug("replaced page",
		slog.Int("pid", p.pid),
		slog.Int("page", vpage),
		slog.Int("victim", victim),
		slog.Int("frame", p.pageTable[vpage].FrameNum),
		slog.String("algorithm", k.policy.Algorithm().String()),
	)
	return nil
}

func (k *Kernel) addPageFrame(p *Process, vpage int) error {
	frame, ok := k.frames.AcquireFreeFrame()
	if !ok {
		k.stats.Exhausted++
		err := noFreeFrameError(p.pid, vpage)
		k.logger.Warn("could not get a free frame",
			slog.Int("pid", p.pid),
			slog.Int("page", vpage),
		)
		return err
	}
	p.addFrame(vpage, frame)
	if tracker, ok := k.policy.(admitter); ok {
		tracker.admit(p, vpage)
	}
	k.stats.Allocations++
	k.logger.Debug("allocated frame",
		slog.Int("pid", p.pid),
		slog.Int("page", vpage),
		slog.Int("frame", frame),
	)
	return nil
}

// IsExhausted reports whether err was caused by
// the frame allocator running out of frames.
func IsExhausted(err error) bool {
	return errors.Is(err, ErrNoFreeFrame)
}
