// Command pagesim drives page replacement simulations.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type (
	cliSettings struct {
		flags      Config
		configPath string
		envFile    string
	}
	// environment is what every subcommand runs with.
	environment struct {
		config *Config
		logger *slog.Logger
	}
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		settings = new(cliSettings)
		root     = &cobra.Command{
			Use:   "pagesim",
			Short: "Simulate virtual memory page replacement",
			Long: "pagesim replays generated memory references against a page replacement policy.\n" +
				"Settings are read from defaults, a JSON file, PAGESIM_ environment variables\n" +
				"(optionally from a dotenv file) and flags, later sources taking precedence.",
			SilenceUsage: true,
		}
		flags = root.PersistentFlags()
	)
	flags.StringVarP(&settings.configPath, "config", "c", "",
		"JSON configuration file")
	flags.StringVar(&settings.envFile, "env-file", ".env",
		"dotenv file holding PAGESIM_ variables")
	bindFlags(flags, &settings.flags)
	root.AddCommand(
		newRunCommand(settings),
		newCompareCommand(settings),
	)
	return root
}

// prepare resolves the configuration of cmd and builds its logger.
func (s *cliSettings) prepare(cmd *cobra.Command) (*environment, error) {
	config := DefaultConfig()
	if s.configPath != "" {
		var err error
		if config, err = LoadConfigFromFile(s.configPath); err != nil {
			return nil, err
		}
	}
	if err := loadEnvFile(s.envFile); err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	config.applyFlags(cmd.Flags(), &s.flags)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger, err := newLogger(cmd.ErrOrStderr(), config.LogLevel)
	if err != nil {
		return nil, err
	}
	return &environment{
		config: config,
		logger: logger,
	}, nil
}
