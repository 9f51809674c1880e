package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/djdv/go-pagesim"
	"github.com/djdv/go-pagesim/internal/baseline"
	"github.com/djdv/go-pagesim/workload"
	"github.com/spf13/cobra"
)

type comparison struct {
	name   string
	faults int
}

func newCompareCommand(settings *cliSettings) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Replay one process's references under every policy",
		Long: "compare generates a single reference sequence and replays it under\n" +
			"every paging policy and the ARC and LRU reference caches.\n" +
			"Each run has exactly --frames frames.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := settings.prepare(cmd)
			if err != nil {
				return err
			}
			config := env.config
			seq, err := workload.Generate(workload.Pattern(config.Pattern),
				config.PagesPerProcess, config.Accesses, config.Seed)
			if err != nil {
				return err
			}
			results, err := compare(seq, config.PagesPerProcess, config.FramesPerProcess, env.logger)
			if err != nil {
				return err
			}
			return writeComparison(cmd.OutOrStdout(), results, len(seq))
		},
	}
}

func compare(seq []int, pages, capacity int, logger *slog.Logger) ([]comparison, error) {
	results := make([]comparison, 0, len(pagesim.Algorithms()))
	for _, algorithm := range pagesim.Algorithms() {
		policy, err := pagesim.NewPolicy(algorithm)
		if err != nil {
			return nil, err
		}
		process, err := pagesim.NewProcess(0, pages, capacity)
		if err != nil {
			return nil, err
		}
		kernel := pagesim.NewKernel(policy, pagesim.NewFreeList(capacity), logger)
		for i, page := range seq {
			if _, err := kernel.Access(process, page, pagesim.Tick(i+1)); err != nil {
				return nil, err
			}
		}
		logger.Debug("policy replayed",
			slog.String("algorithm", algorithm.String()),
			slog.Any("stats", kernel.Stats()),
		)
		results = append(results, comparison{
			name:   algorithm.String(),
			faults: int(kernel.Stats().Faults),
		})
	}
	for _, constructor := range baseline.Constructors() {
		cache, err := constructor.New(capacity)
		if err != nil {
			return nil, err
		}
		results = append(results, comparison{
			name:   constructor.Name,
			faults: baseline.Misses(cache, seq),
		})
	}
	return results, nil
}

func writeComparison(w io.Writer, results []comparison, accesses int) error {
	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(table, "POLICY\tFAULTS\tFAULT RATE")
	for _, result := range results {
		var rate float64
		if accesses > 0 {
			rate = float64(result.faults) / float64(accesses) * 100
		}
		fmt.Fprintf(table, "%s\t%d\t%.2f%%\n", result.name, result.faults, rate)
	}
	return table.Flush()
}
