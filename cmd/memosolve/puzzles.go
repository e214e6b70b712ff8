package main

import (
	"fmt"
	"os"
	"time"

	"github.com/on-the-ground/memo_ive_go/puzzles/battery"
	"github.com/on-the-ground/memo_ive_go/puzzles/machine"
	"github.com/on-the-ground/memo_ive_go/search"
	"github.com/on-the-ground/memo_ive_go/shared/log"
	"github.com/spf13/cobra"
)

func (a *app) batteryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "battery <input>",
		Short: "Total the maximum joltage of every battery bank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			banks, err := battery.Parse(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			start := time.Now()
			ans, err := battery.Solve(cmd.Context(), banks, a.cfg.Workers)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			a.solved("battery", args[0], len(banks), start)
			a.printAnswer(cmd, ans.Part1, ans.Part2)
			return nil
		},
	}
}

func (a *app) machineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "machine <input>",
		Short: "Total the fewest button presses for every machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			manuals, err := machine.Parse(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			start := time.Now()
			ans, err := machine.Solve(cmd.Context(), manuals, machine.SolveOptions{
				Workers: a.cfg.Workers,
				Memo:    a.cfg.MemoConfig(),
				Search:  append(a.cfg.SearchOptions(), search.WithLogger(a.logger)),
			})
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			a.solved("machine", args[0], len(manuals), start)
			a.printAnswer(cmd, ans.Part1, ans.Part2)
			return nil
		},
	}
}

func (a *app) solved(puzzle, input string, instances int, start time.Time) {
	log.Log(a.logger, log.LogInfo, "solved", map[string]interface{}{
		"puzzle":    puzzle,
		"input":     input,
		"instances": instances,
		"backend":   string(a.cfg.Memo.Backend),
		"elapsed":   time.Since(start),
	})
}
