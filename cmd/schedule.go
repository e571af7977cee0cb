package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voltplan/voltplan/config"
	"github.com/voltplan/voltplan/core/model"
	"github.com/voltplan/voltplan/core/prices"
	"github.com/voltplan/voltplan/core/scheduler"
	"github.com/voltplan/voltplan/infra/logger"
)

var scheduleReq = model.DefaultRequest()

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Compute one schedule and print it as JSON",
	RunE:  runSchedule,
}

func init() {
	f := scheduleCmd.Flags()
	f.Float64Var(&scheduleReq.SoCStart, "soc-start", scheduleReq.SoCStart, "initial state of charge")
	f.Float64Var(&scheduleReq.SoCMax, "soc-max", scheduleReq.SoCMax, "maximum state of charge")
	f.Float64Var(&scheduleReq.SoCMin, "soc-min", scheduleReq.SoCMin, "minimum state of charge")
	f.Float64Var(&scheduleReq.SoCTarget, "soc-target", scheduleReq.SoCTarget, "terminal state of charge")
	f.Float64Var(&scheduleReq.PowerCapacity, "power-capacity", scheduleReq.PowerCapacity, "charge/discharge power limit")
	f.Float64Var(&scheduleReq.StorageCapacity, "storage-capacity", scheduleReq.StorageCapacity, "usable energy capacity")
	f.Float64Var(&scheduleReq.ConversionEfficiency, "conversion-efficiency", scheduleReq.ConversionEfficiency, "one-way conversion efficiency")
	f.BoolVar(&scheduleReq.TopUp, "top-up", scheduleReq.TopUp, "force terminal state of charge to soc-max")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	series := prices.DefaultSeries()
	if cfg, err := config.Load(cfgPath); err == nil {
		// A config file is optional for one-shot runs; when present its
		// static curve replaces the stock prices.
		if s, serr := cfg.Prices.StaticSeries(); serr == nil {
			series = s
		}
	}
	scheduleReq.Prices = series

	sched := scheduler.New(scheduler.SimplexSolver{}, logger.New("schedule-command"), nil)
	res, err := sched.Schedule(scheduleReq)
	if err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
