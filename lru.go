package pagesim

// LRU evicts the resident page with the oldest timestamp.
// Ties go to the lowest virtual page.
type LRU struct{}

func (LRU) Algorithm() Algorithm { return AlgorithmLRU }

func (LRU) Replace(p *Process, vpage int, now Tick) int {
	var (
		victim = -1
		oldest Tick
	)
	for page, entry := range p.pageTable {
		if entry.Valid &&
			(victim == -1 || entry.Timestamp < oldest) {
			victim, oldest = page, entry.Timestamp
		}
	}
	if victim == -1 {
		panic("LRU replacement without resident pages")
	}
	frame := p.evict(victim)
	p.install(vpage, frame).Timestamp = now
	return victim
}
