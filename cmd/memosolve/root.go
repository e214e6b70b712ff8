package main

import (
	"fmt"

	"github.com/on-the-ground/memo_ive_go/config"
	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/on-the-ground/memo_ive_go/shared/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	flagConfig     = "config"
	flagBackend    = "backend"
	flagMaxEntries = "max-entries"
	flagWorkers    = "workers"
	flagMaxDepth   = "max-depth"
	flagIterative  = "iterative"
	flagLogLevel   = "log-level"
)

type loggerFactory func(log.LogLevel) (*zap.Logger, error)

// app carries the settings resolved before a subcommand runs.
type app struct {
	newLogger loggerFactory

	configPath string
	backend    string
	maxEntries int
	workers    int
	maxDepth   int
	iterative  bool
	logLevel   string

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd(newLogger loggerFactory) *cobra.Command {
	a := &app{newLogger: newLogger, logger: zap.NewNop()}
	defaults := config.Default()

	root := &cobra.Command{
		Use:               "memosolve",
		Short:             "Solve memoized search puzzles",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { log.Sync(a.logger) },
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, flagConfig, "", "YAML settings file")
	flags.StringVar(&a.backend, flagBackend, string(defaults.Memo.Backend), fmt.Sprintf("memo table backend %v", memo.Backends()))
	flags.IntVar(&a.maxEntries, flagMaxEntries, defaults.Memo.MaxEntries, "entry bound for the bounded backends")
	flags.IntVar(&a.workers, flagWorkers, defaults.Workers, "puzzle instances solved concurrently")
	flags.IntVar(&a.maxDepth, flagMaxDepth, defaults.Search.MaxDepth, "search depth limit, 0 disables it")
	flags.BoolVar(&a.iterative, flagIterative, defaults.Search.Iterative, "search on an explicit stack")
	flags.StringVar(&a.logLevel, flagLogLevel, defaults.LogLevel, "debug, info, warn or error")

	root.AddCommand(a.batteryCmd(), a.machineCmd())
	return root
}

// setup loads the config file, applies explicitly set flags on top and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed(flagBackend) {
		cfg.Memo.Backend = memo.Backend(a.backend)
	}
	if flags.Changed(flagMaxEntries) {
		cfg.Memo.MaxEntries = a.maxEntries
	}
	if flags.Changed(flagWorkers) {
		cfg.Workers = a.workers
	}
	if flags.Changed(flagMaxDepth) {
		cfg.Search.MaxDepth = a.maxDepth
	}
	if flags.Changed(flagIterative) {
		cfg.Search.Iterative = a.iterative
	}
	if flags.Changed(flagLogLevel) {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := a.newLogger(level)
	if err != nil {
		return fmt.Errorf("memosolve: logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) printAnswer(cmd *cobra.Command, part1, part2 uint64) {
	fmt.Fprintf(cmd.OutOrStdout(), "part 1: %d\npart 2: %d\n", part1, part2)
}
