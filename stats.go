package pagesim

import "log/slog"

// Stats counts the work done by a [Kernel].
type Stats struct {
	Accesses    uint64 // References serviced.
	Hits        uint64 // References to resident pages.
	Faults      uint64 // References to non-resident pages.
	Allocations uint64 // Faults served by a fresh frame.
	Evictions   uint64 // Faults served by replacement.
	Exhausted   uint64 // Faults left unserved for lack of frames.
}

// FaultRate returns the fraction of accesses that faulted.
func (s Stats) FaultRate() float64 {
	if s.Accesses == 0 {
		return 0
	}
	return float64(s.Faults) / float64(s.Accesses)
}

// LogValue implements [slog.LogValuer].
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("accesses", s.Accesses),
		slog.Uint64("hits", s.Hits),
		slog.Uint64("faults", s.Faults),
		slog.Float64("fault_rate", s.FaultRate()),
		slog.Group("faults_served",
			slog.Uint64("allocations", s.Allocations),
			slog.Uint64("evictions", s.Evictions),
			slog.Uint64("exhausted", s.Exhausted),
		),
	)
}
