package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/djdv/go-pagesim"
	"github.com/djdv/go-pagesim/workload"
	"github.com/spf13/cobra"
)

// simulation interleaves the references of several processes,
// one access per process per round, all sharing one free list.
type simulation struct {
	kernel    *pagesim.Kernel
	frames    *pagesim.FreeList
	processes []*pagesim.Process
	sequences [][]int
	now       pagesim.Tick
	unserved  int
}

func newRunCommand(settings *cliSettings) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run a multi-process simulation under one policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := settings.prepare(cmd)
			if err != nil {
				return err
			}
			sim, err := newSimulation(env.config, env.logger)
			if err != nil {
				return err
			}
			if err := sim.run(); err != nil {
				return err
			}
			env.logger.Info("simulation finished",
				slog.String("algorithm", env.config.Algorithm),
				slog.Any("stats", sim.kernel.Stats()),
				slog.Int("free_frames", sim.frames.Len()),
			)
			out := cmd.OutOrStdout()
			if err := sim.writeSummary(out); err != nil {
				return err
			}
			if !env.config.DumpState {
				return nil
			}
			palette := newPalette(env.config.NoColor)
			for _, process := range sim.processes {
				if err := writeProcessState(out, process.Snapshot(), palette); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newSimulation(config *Config, logger *slog.Logger) (*simulation, error) {
	algorithm, err := pagesim.ParseAlgorithm(config.Algorithm)
	if err != nil {
		return nil, err
	}
	policy, err := pagesim.NewPolicy(algorithm)
	if err != nil {
		return nil, err
	}
	var (
		frames = pagesim.NewFreeList(config.TotalFrames)
		sim    = &simulation{
			kernel:    pagesim.NewKernel(policy, frames, logger),
			frames:    frames,
			processes: make([]*pagesim.Process, config.Processes),
			sequences: make([][]int, config.Processes),
		}
		pattern = workload.Pattern(config.Pattern)
	)
	for pid := range config.Processes {
		process, err := pagesim.NewProcess(pid, config.PagesPerProcess, config.FramesPerProcess)
		if err != nil {
			return nil, err
		}
		seed := config.Seed + int64(pid)
		seq, err := workload.Generate(pattern, config.PagesPerProcess, config.Accesses, seed)
		if err != nil {
			return nil, err
		}
		sim.processes[pid] = process
		sim.sequences[pid] = seq
	}
	return sim, nil
}

// run replays every sequence. References that find no free frame
// are counted and skipped.
func (s *simulation) run() error {
	if len(s.sequences) == 0 {
		return nil
	}
	for step := range len(s.sequences[0]) {
		for pid, process := range s.processes {
			s.now++
			_, err := s.kernel.Access(process, s.sequences[pid][step], s.now)
			switch {
			case err == nil:
			case pagesim.IsExhausted(err):
				s.unserved++
			default:
				return err
			}
		}
	}
	return nil
}

func (s *simulation) writeSummary(w io.Writer) error {
	stats := s.kernel.Stats()
	_, err := fmt.Fprintf(w,
		"algorithm: %s\n"+
			"processes: %d\n"+
			"accesses: %d\n"+
			"faults: %d (%.2f%%)\n"+
			"evictions: %d\n"+
			"unserved: %d\n",
		s.kernel.Policy().Algorithm(),
		len(s.processes),
		stats.Accesses,
		stats.Faults, stats.FaultRate()*100,
		stats.Evictions,
		s.unserved,
	)
	return err
}
