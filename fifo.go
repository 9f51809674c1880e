package pagesim

// FIFO evicts the page that has been resident the longest.
// References do not reorder the queue.
type FIFO struct{}

func (FIFO) Algorithm() Algorithm { return AlgorithmFIFO }

func (FIFO) admit(p *Process, vpage int) {
	queued := p.fifo.Push(vpage)
	if debugging {
		assert(queued, "page admitted to the FIFO twice")
	}
}

func (FIFO) Replace(p *Process, vpage int, _ Tick) int {
	victim, ok := p.fifo.Pop()
	if !ok {
		panic("FIFO replacement with an empty queue")
	}
	frame := p.evict(victim)
	p.install(vpage, frame)
	p.fifo.Push(vpage)
	return victim
}
