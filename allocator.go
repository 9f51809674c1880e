package pagesim

import "github.com/djdv/go-pagesim/internal/ring"

type (
	// FrameAllocator supplies free physical frames.
	// Implementations may be shared by many processes
	// but are only ever called sequentially.
	FrameAllocator interface {
		// AcquireFreeFrame removes a frame from the pool.
		// It returns false when the pool is empty.
		AcquireFreeFrame() (frame int, ok bool)
	}

	// FreeList is a [FrameAllocator] handing out
	// frames in ascending order.
	FreeList struct {
		free *ring.Queue[int]
	}
)

// NewFreeList creates a pool holding frames 0 through frames-1.
func NewFreeList(frames int) *FreeList {
	free := ring.New[int](frames)
	for frame := range frames {
		free.Push(frame)
	}
	return &FreeList{free: free}
}

// AcquireFreeFrame implements [FrameAllocator].
func (fl *FreeList) AcquireFreeFrame() (int, bool) {
	return fl.free.Pop()
}

// Len returns the number of frames still available.
func (fl *FreeList) Len() int { return fl.free.Len() }
