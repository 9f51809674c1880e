package pagesim

// Count approximates least frequently used replacement by aging.
//
// A single sweep starts at the frame cursor.
// The first page found with a zero count is evicted.
// Every other page passed has its count divided by [CountDecay].
// If the sweep wraps around without finding a zero count,
// the page with the lowest count seen (before aging) is evicted,
// the earliest in sweep order winning ties.
// Loaded pages start with a count of [CountReset].
type Count struct{}

const (
	CountDecay = 3
	CountReset = 3
)

func (Count) Algorithm() Algorithm { return AlgorithmCount }

func (c Count) Replace(p *Process, vpage int, _ Tick) int {
	var (
		start          = p.framePtr
		lowest         = -1
		lowestSlot     int
		lowestObserved int
	)
	for {
		var (
			slot   = p.framePtr
			victim = p.residentAt(slot)
			entry  = &p.pageTable[victim]
		)
		if lowest == -1 || entry.Count < lowestObserved {
			lowest, lowestSlot, lowestObserved = victim, slot, entry.Count
		}
		if entry.Count == 0 {
			c.load(p, vpage, victim, slot)
			return victim
		}
		entry.Count /= CountDecay
		if p.advance(); p.framePtr == start {
			break
		}
	}
	c.load(p, vpage, lowest, lowestSlot)
	return lowest
}

// load replaces victim, held in slot, with vpage
// and moves the cursor past slot.
func (Count) load(p *Process, vpage, victim, slot int) {
	frame := p.evict(victim)
	entry := p.install(vpage, frame)
	entry.Used = true
	entry.Count = CountReset
	p.framePtr = (slot + 1) % len(p.allocatedFrames)
}
