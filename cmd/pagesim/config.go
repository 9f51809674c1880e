package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/djdv/go-pagesim"
	"github.com/djdv/go-pagesim/workload"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config holds simulation settings.
type Config struct {
	Algorithm        string `json:"algorithm"`          // Replacement policy (fifo, lru, clock, count)
	Pattern          string `json:"pattern"`            // Access pattern of every process
	LogLevel         string `json:"log_level"`          // Log level (debug, info, warn, error)
	TotalFrames      int    `json:"total_frames"`       // Physical frames shared by all processes
	Processes        int    `json:"processes"`          // Number of simulated processes
	PagesPerProcess  int    `json:"pages_per_process"`  // Virtual pages per process
	FramesPerProcess int    `json:"frames_per_process"` // Frame capacity of each process
	Accesses         int    `json:"accesses"`           // References made by each process
	Seed             int64  `json:"seed"`               // Seed of the first process's workload
	DumpState        bool   `json:"dump_state"`         // Print every page table when done
	NoColor          bool   `json:"no_color"`           // Disable colored state dumps
}

const envPrefix = "PAGESIM_"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Algorithm:        pagesim.AlgorithmClock.String(),
		Pattern:          string(workload.PatternWorkingSet),
		LogLevel:         "info",
		TotalFrames:      64,
		Processes:        4,
		PagesPerProcess:  64,
		FramesPerProcess: 8,
		Accesses:         10_000,
		Seed:             1,
	}
}

// LoadConfigFromFile loads configuration from a JSON file
// on top of the defaults.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// loadEnvFile adds the variables of a dotenv file to the environment.
// Variables already set are kept. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil &&
		!errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields with PAGESIM_ variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := []struct {
		field *string
		name  string
	}{
		{&c.Algorithm, "ALGORITHM"},
		{&c.Pattern, "PATTERN"},
		{&c.LogLevel, "LOG_LEVEL"},
	}
	for _, env := range strs {
		if val, ok := lookup(envPrefix + env.name); ok {
			*env.field = val
		}
	}
	ints := []struct {
		field *int
		name  string
	}{
		{&c.TotalFrames, "TOTAL_FRAMES"},
		{&c.Processes, "PROCESSES"},
		{&c.PagesPerProcess, "PAGES_PER_PROCESS"},
		{&c.FramesPerProcess, "FRAMES_PER_PROCESS"},
		{&c.Accesses, "ACCESSES"},
	}
	for _, env := range ints {
		if val, ok := lookup(envPrefix + env.name); ok {
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid %s%s: %w", envPrefix, env.name, err)
			}
			*env.field = n
		}
	}
	if val, ok := lookup(envPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %sSEED: %w", envPrefix, err)
		}
		c.Seed = seed
	}
	bools := []struct {
		field *bool
		name  string
	}{
		{&c.DumpState, "DUMP_STATE"},
		{&c.NoColor, "NO_COLOR"},
	}
	for _, env := range bools {
		if val, ok := lookup(envPrefix + env.name); ok {
			*env.field = val == "true" || val == "1"
		}
	}
	return nil
}

// bindFlags registers a flag for every field, storing parsed values in values.
func bindFlags(flags *pflag.FlagSet, values *Config) {
	defaults := DefaultConfig()
	flags.StringVarP(&values.Algorithm, "algorithm", "a", defaults.Algorithm,
		"replacement policy (fifo, lru, clock, count)")
	flags.StringVarP(&values.Pattern, "pattern", "p", defaults.Pattern,
		"access pattern (sequential, looping, zipf, uniform, working-set)")
	flags.StringVar(&values.LogLevel, "log-level", defaults.LogLevel,
		"log level (debug, info, warn, error)")
	flags.IntVar(&values.TotalFrames, "total-frames", defaults.TotalFrames,
		"physical frames shared by all processes")
	flags.IntVar(&values.Processes, "processes", defaults.Processes,
		"number of simulated processes")
	flags.IntVar(&values.PagesPerProcess, "pages", defaults.PagesPerProcess,
		"virtual pages per process")
	flags.IntVar(&values.FramesPerProcess, "frames", defaults.FramesPerProcess,
		"frame capacity of each process")
	flags.IntVarP(&values.Accesses, "accesses", "n", defaults.Accesses,
		"references made by each process")
	flags.Int64Var(&values.Seed, "seed", defaults.Seed,
		"workload seed")
	flags.BoolVar(&values.DumpState, "dump", defaults.DumpState,
		"print every page table when done")
	flags.BoolVar(&values.NoColor, "no-color", defaults.NoColor,
		"disable colored output")
}

// applyFlags copies the fields whose flags were set on the command line.
func (c *Config) applyFlags(flags *pflag.FlagSet, values *Config) {
	flags.Visit(func(flag *pflag.Flag) {
		switch flag.Name {
		case "algorithm":
			c.Algorithm = values.Algorithm
		case "pattern":
			c.Pattern = values.Pattern
		case "log-level":
			c.LogLevel = values.LogLevel
		case "total-frames":
			c.TotalFrames = values.TotalFrames
		case "processes":
			c.Processes = values.Processes
		case "pages":
			c.PagesPerProcess = values.PagesPerProcess
		case "frames":
			c.FramesPerProcess = values.FramesPerProcess
		case "accesses":
			c.Accesses = values.Accesses
		case "seed":
			c.Seed = values.Seed
		case "dump":
			c.DumpState = values.DumpState
		case "no-color":
			c.NoColor = values.NoColor
		}
	})
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := pagesim.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if !slices.Contains(workload.Patterns(), workload.Pattern(strings.ToLower(c.Pattern))) {
		return fmt.Errorf("%w: %q", workload.ErrUnknownPattern, c.Pattern)
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.TotalFrames < 1 {
		return fmt.Errorf("total frames must be greater than 0")
	}
	if c.Processes < 1 {
		return fmt.Errorf("process count must be greater than 0")
	}
	if c.PagesPerProcess < 1 {
		return fmt.Errorf("pages per process must be greater than 0")
	}
	if c.FramesPerProcess < pagesim.MinimumCapacity {
		return fmt.Errorf("frames per process must be at least %d", pagesim.MinimumCapacity)
	}
	if c.Accesses < 0 {
		return fmt.Errorf("access count cannot be negative")
	}
	return nil
}
