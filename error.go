package pagesim

import "fmt"

type constError string

const (
	// ErrInvalidCapacity may be returned from [NewProcess].
	ErrInvalidCapacity = constError("invalid frame capacity")
	// ErrInvalidPageCount may be returned from [NewProcess].
	ErrInvalidPageCount = constError("invalid page count")
	// ErrPageOutOfRange is returned when a virtual page
	// is not part of the process's address space.
	ErrPageOutOfRange = constError("virtual page out of range")
	// ErrNoFreeFrame is returned when a process
	// needs a fresh frame but the allocator has none left.
	// The faulting page remains invalid.
	ErrNoFreeFrame = constError("no free frame available")
	// ErrUnknownAlgorithm may be returned from
	// [ParseAlgorithm] and [NewPolicy].
	ErrUnknownAlgorithm = constError("unknown paging algorithm")
	// ErrFrameNotMapped is the cause of panics raised when
	// an allocated frame has no valid page table entry.
	// It indicates broken policy bookkeeping,
	// not a condition callers are expected to handle.
	ErrFrameNotMapped = constError("frame not mapped")
)

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >=%d but %d was requested",
		ErrInvalidCapacity, MinimumCapacity, capacity)
}

func pageCountError(pages int) error {
	return fmt.Errorf(
		"%w: must be >=1 but %d was requested",
		ErrInvalidPageCount, pages)
}

func pageRangeError(pid, vpage, pages int) error {
	return fmt.Errorf(
		"%w: process %d has pages [0,%d) but %d was accessed",
		ErrPageOutOfRange, pid, pages, vpage)
}

func noFreeFrameError(pid, vpage int) error {
	return fmt.Errorf(
		"%w: process %d page %d",
		ErrNoFreeFrame, pid, vpage)
}

func frameNotMappedError(frame int) error {
	return fmt.Errorf(
		"%w: no valid page table entry for frame %d",
		ErrFrameNotMapped, frame)
}
