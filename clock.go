package pagesim

// Clock is the second chance algorithm.
// The frame cursor sweeps the allocated frames, clearing
// reference bits until it reaches a page without one.
// Termination is bounded by two sweeps:
// the first clears every bit it passes.
type Clock struct{}

func (Clock) Algorithm() Algorithm { return AlgorithmClock }

func (Clock) Replace(p *Process, vpage int, _ Tick) int {
	for {
		var (
			slot   = p.framePtr
			victim = p.residentAt(slot)
			entry  = &p.pageTable[victim]
		)
		if entry.Used {
			entry.Used = false
			p.advance()
			continue
		}
		frame := p.evict(victim)
		p.install(vpage, frame).Used = true
		p.advance()
		return victim
	}
}
