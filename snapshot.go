package pagesim

import (
	"log/slog"
	"slices"
)

// Snapshot is a copy of a process's paging state.
// It does not change when the process does.
type Snapshot struct {
	Pages           []PageTableEntry
	AllocatedFrames []int
	PID             int
	Capacity        int
	FramePtr        int
}

// Snapshot captures the current state of p.
func (p *Process) Snapshot() Snapshot {
	return Snapshot{
		PID:             p.pid,
		Pages:           slices.Clone(p.pageTable),
		AllocatedFrames: slices.Clone(p.allocatedFrames),
		Capacity:        p.capacity,
		FramePtr:        p.framePtr,
	}
}

// Residents returns the virtual page held by each allocated frame,
// in allocation order. Unmapped frames are reported as -1.
func (s Snapshot) Residents() []int {
	residents := make([]int, len(s.AllocatedFrames))
	for slot, frame := range s.AllocatedFrames {
		residents[slot], _ = findResidentPage(s.Pages, frame)
	}
	return residents
}

// ValidPages returns the number of resident pages.
func (s Snapshot) ValidPages() int {
	var valid int
	for _, entry := range s.Pages {
		if entry.Valid {
			valid++
		}
	}
	return valid
}

// LogValue implements [slog.LogValuer].
func (s Snapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("pid", s.PID),
		slog.Int("pages", len(s.Pages)),
		slog.Int("valid", s.ValidPages()),
		slog.Group("frames",
			slog.Any("allocated", s.AllocatedFrames),
			slog.Int("max", s.Capacity),
			slog.Int("pointer", s.FramePtr),
		),
		slog.Any("residents", s.Residents()),
	)
}
