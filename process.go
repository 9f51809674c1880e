package pagesim

import (
	"fmt"
	"slices"

	"github.com/djdv/go-pagesim/internal/ring"
)

type (
	// Tick is a value of the simulation's logical clock.
	// Recency is always compared in ticks, never in wall-clock time.
	Tick uint64

	// PageTableEntry holds the residency and replacement
	// metadata of a single virtual page.
	PageTableEntry struct {
		// FrameNum is the physical frame holding the page.
		// Only meaningful while Valid.
		FrameNum int
		// Count is the aging usage counter used by [Count].
		Count int
		// Timestamp is the tick of the last access, used by [LRU].
		Timestamp Tick
		// Valid is true while the page is resident.
		Valid bool
		// Used is the reference bit, cleared by [Clock] sweeps.
		Used bool
	}

	// Process owns a page table and the frames allocated to it.
	// Frames are added up to the process's capacity and are never released;
	// after that only the page to frame mapping changes.
	// Constructed by [NewProcess].
	Process struct {
		fifo            *ring.Queue[int]
		pageTable       []PageTableEntry
		allocatedFrames []int
		pid, capacity,
		framePtr int
	}
)

// MinimumCapacity defines the lowest frame capacity supported by [NewProcess].
const MinimumCapacity = 1

// NewProcess creates a process with pages virtual pages,
// all invalid, which may hold at most capacity frames.
func NewProcess(pid, pages, capacity int) (*Process, error) {
	if pages < 1 {
		return nil, pageCountError(pages)
	}
	if capacity < MinimumCapacity {
		return nil, minCapacityError(capacity)
	}
	return &Process{
		pid:             pid,
		capacity:        capacity,
		pageTable:       make([]PageTableEntry, pages),
		allocatedFrames: make([]int, 0, capacity),
		fifo:            ring.New[int](capacity),
	}, nil
}

// PID returns the process identifier.
func (p *Process) PID() int { return p.pid }

// Pages returns the number of virtual pages.
func (p *Process) Pages() int { return len(p.pageTable) }

// Capacity returns the maximum number of frames the process may hold.
func (p *Process) Capacity() int { return p.capacity }

// FramePtr returns the rotation cursor shared by [Clock] and [Count].
func (p *Process) FramePtr() int { return p.framePtr }

// Page returns a copy of the entry for vpage.
func (p *Process) Page(vpage int) (PageTableEntry, error) {
	if err := p.checkPage(vpage); err != nil {
		return PageTableEntry{}, err
	}
	return p.pageTable[vpage], nil
}

// AllocatedFrames returns a copy of the frames allocated to the process,
// in allocation order.
func (p *Process) AllocatedFrames() []int {
	return slices.Clone(p.allocatedFrames)
}

// Verify checks the process's bookkeeping:
// every valid page maps a distinct allocated frame,
// every allocated frame is mapped, and
// the allocation never exceeds capacity.
func (p *Process) Verify() error {
	if len(p.allocatedFrames) > p.capacity {
		return fmt.Errorf("process %d holds %d frames but capacity is %d",
			p.pid, len(p.allocatedFrames), p.capacity)
	}
	allocated := make(map[int]bool, len(p.allocatedFrames))
	for _, frame := range p.allocatedFrames {
		if allocated[frame] {
			return fmt.Errorf("process %d allocated frame %d twice", p.pid, frame)
		}
		allocated[frame] = false
	}
	for vpage, entry := range p.pageTable {
		if !entry.Valid {
			continue
		}
		mapped, ok := allocated[entry.FrameNum]
		switch {
		case !ok:
			return fmt.Errorf("process %d page %d maps unallocated frame %d",
				p.pid, vpage, entry.FrameNum)
		case mapped:
			return fmt.Errorf("process %d frame %d is mapped more than once",
				p.pid, entry.FrameNum)
		}
		allocated[entry.FrameNum] = true
	}
	for frame, mapped := range allocated {
		if !mapped {
			return fmt.Errorf("process %d: %w", p.pid, frameNotMappedError(frame))
		}
	}
	if queued := p.fifo.Len(); queued != 0 && queued != len(p.allocatedFrames) {
		return fmt.Errorf("process %d queued %d pages for %d frames",
			p.pid, queued, len(p.allocatedFrames))
	}
	return nil
}

func (p *Process) checkPage(vpage int) error {
	if vpage < 0 || vpage >= len(p.pageTable) {
		return pageRangeError(p.pid, vpage, len(p.pageTable))
	}
	return nil
}

func (p *Process) atCapacity() bool {
	return len(p.allocatedFrames) == p.capacity
}

// addFrame appends a fresh frame and loads vpage into it.
func (p *Process) addFrame(vpage, frame int) {
	if debugging {
		assert(!p.atCapacity(),
			"frame added beyond capacity")
	}
	p.allocatedFrames = append(p.allocatedFrames, frame)
	p.install(vpage, frame)
}

func (p *Process) install(vpage, frame int) *PageTableEntry {
	entry := &p.pageTable[vpage]
	if debugging {
		assert(!entry.Valid,
			"installed a page that is already resident")
	}
	entry.FrameNum = frame
	entry.Valid = true
	return entry
}

// evict invalidates vpage and returns the frame it held.
func (p *Process) evict(vpage int) int {
	entry := &p.pageTable[vpage]
	entry.Valid = false
	return entry.FrameNum
}

func (p *Process) advance() {
	p.framePtr = (p.framePtr + 1) % len(p.allocatedFrames)
}

// residentAt returns the virtual page loaded in the frame
// at slot of the allocated frame list.
func (p *Process) residentAt(slot int) int {
	frame := p.allocatedFrames[slot]
	vpage, err := findResidentPage(p.pageTable, frame)
	if err != nil {
		panic(fmt.Errorf("process %d: %w", p.pid, err))
	}
	return vpage
}

// findResidentPage returns the index of the valid entry mapping frame.
func findResidentPage(table []PageTableEntry, frame int) (int, error) {
	for vpage, entry := range table {
		if entry.Valid && entry.FrameNum == frame {
			return vpage, nil
		}
	}
	return -1, frameNotMappedError(frame)
}
