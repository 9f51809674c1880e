package pagesim_test

import (
	"fmt"
	"testing"

	"github.com/djdv/go-pagesim"
	"github.com/djdv/go-pagesim/internal/baseline"
	"github.com/djdv/go-pagesim/workload"
)

type (
	benchPager interface {
		access(page int, now pagesim.Tick) (hit bool)
	}
	pagerCtor        = func(pages, capacity int, b *testing.B) benchPager
	pagerConstructor struct {
		name string
		new  pagerCtor
	}
	kernelPager struct {
		kernel  *pagesim.Kernel
		process *pagesim.Process
		b       *testing.B
	}
	baselinePager struct {
		baseline.Cache
	}
)

func (kp kernelPager) access(page int, now pagesim.Tick) bool {
	hit, err := kp.kernel.Access(kp.process, page, now)
	if err != nil {
		kp.b.Fatal(err)
	}
	return hit
}

func (bp baselinePager) access(page int, _ pagesim.Tick) bool {
	return bp.Access(page)
}

// Fixed seed for reproducibility.
// Change to test variance between runs.
const rngSeed = 1

func BenchmarkReplacement(b *testing.B) {
	const (
		pages  = 4096
		seqLen = 1 << 16 // Power of two for cheap masking.
	)
	var (
		constructors = pagerConstructors()
		capacities   = []int{32, 128, 512}
	)
	for _, pattern := range workload.Patterns() {
		seq, err := workload.Generate(pattern, pages, seqLen, rngSeed)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(string(pattern), func(b *testing.B) {
			for _, capacity := range capacities {
				b.Run(fmt.Sprintf("Cap%d", capacity), func(b *testing.B) {
					for _, constructor := range constructors {
						b.Run(constructor.name,
							newBenchPager(constructor.new, pages, capacity, seq))
					}
				})
			}
		})
	}
}

func pagerConstructors() []pagerConstructor {
	constructors := make([]pagerConstructor, 0, len(pagesim.Algorithms()))
	for _, algorithm := range pagesim.Algorithms() {
		constructors = append(constructors, pagerConstructor{
			algorithm.String(),
			func(pages, capacity int, b *testing.B) benchPager {
				return kernelPager{
					kernel:  newKernel(b, algorithm, pagesim.NewFreeList(capacity)),
					process: newProcess(b, 0, pages, capacity),
					b:       b,
				}
			},
		})
	}
	for _, constructor := range baseline.Constructors() {
		constructors = append(constructors, pagerConstructor{
			constructor.Name,
			func(_, capacity int, b *testing.B) benchPager {
				cache, err := constructor.New(capacity)
				if err != nil {
					b.Fatal(err)
				}
				return baselinePager{Cache: cache}
			},
		})
	}
	return constructors
}

func newBenchPager(ctor pagerCtor, pages, capacity int, sequence []int) func(b *testing.B) {
	return func(b *testing.B) {
		var (
			pager   = ctor(pages, capacity, b)
			now     pagesim.Tick
			seqMask = len(sequence) - 1
		)
		// Warm up so cold misses do not skew the rates.
		for _, page := range sequence {
			now++
			pager.access(page, now)
		}
		b.ReportAllocs()
		b.ResetTimer()
		var hits, misses int64
		for i := 0; b.Loop(); i++ {
			now++
			if pager.access(sequence[i&seqMask], now) {
				hits++
			} else {
				misses++
			}
		}
		b.StopTimer()
		var (
			total     = float64(hits + misses)
			hitRate   = float64(hits) / total * 100.0
			faultRate = float64(misses) / total * 100.0
		)
		b.ReportMetric(hitRate, "hit_rate_pct")
		b.ReportMetric(faultRate, "fault_rate_pct")
	}
}
