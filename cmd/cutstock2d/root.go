package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cutstock2d/cutstock2d/bnb"
	"github.com/cutstock2d/cutstock2d/colgen"
	"github.com/cutstock2d/cutstock2d/config"
	"github.com/cutstock2d/cutstock2d/cutlog"
	"github.com/cutstock2d/cutstock2d/heuristic"
	"github.com/cutstock2d/cutstock2d/loader"
	"github.com/cutstock2d/cutstock2d/pricing"
	"github.com/cutstock2d/cutstock2d/report"
)

func newRootCmd() *cobra.Command {
	var (
		input       string
		outputDir   string
		pricingName string
		maxNodes    int
		maxCGIter   int
		logPrefix   string
	)

	cmd := &cobra.Command{
		Use:   "cutstock2d",
		Short: "Branch-and-price solver for the two-stage 2D guillotine cutting-stock problem",
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := parsePricingMethod(pricingName)
			if err != nil {
				return err
			}

			cfg := config.New(
				config.WithMaxNodes(maxNodes),
				config.WithMaxCGIter(maxCGIter),
				config.WithPricingMethod(method),
				config.WithOutputDir(outputDir),
				config.WithLogPrefix(logPrefix),
			)

			return runSolve(input, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&input, "input", "", "path to the tab-separated instance file (required)")
	flags.StringVar(&outputDir, "output-dir", ".", "directory to write Stock_<k>.txt cutting-plan files into")
	flags.StringVar(&pricingName, "pricing", pricing.Knapsack.String(), "pricing backend: knapsack|arcflow|dp")
	flags.IntVar(&maxNodes, "max-nodes", config.DefaultMaxNodes, "branch-and-bound node budget")
	flags.IntVar(&maxCGIter, "max-cg-iter", config.DefaultMaxCGIter, "per-node column-generation iteration budget")
	flags.StringVar(&logPrefix, "log-prefix", "", "log file prefix (<prefix>.log); empty disables the file sink")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func parsePricingMethod(name string) (pricing.Method, error) {
	switch name {
	case pricing.Knapsack.String():
		return pricing.Knapsack, nil
	case pricing.ArcFlow.String():
		return pricing.ArcFlow, nil
	case pricing.DP.String():
		return pricing.DP, nil
	default:
		return 0, fmt.Errorf("cutstock2d: unknown pricing method %q", name)
	}
}

func runSolve(input string, cfg config.Config) error {
	log := cutlog.New(cutlog.WithPrefix(cfg.LogPrefix()))
	defer log.Close()

	log.Info("loading instance from %s", input)
	inst, err := loader.LoadFile(input)
	if err != nil {
		log.Error("load failed: %v", err)

		return err
	}

	seed, err := heuristic.SeedBasic(inst)
	if err != nil {
		log.Error("seeding failed: %v", err)

		return err
	}

	pricer, err := cfg.Pricer()
	if err != nil {
		log.Error("pricer construction failed: %v", err)

		return err
	}

	log.Info("solving (pricing=%v, max-nodes=%d, max-cg-iter=%d)", cfg.PricingMethod(), cfg.Params().MaxNodes, cfg.Params().MaxCGIter)
	cols := colgen.ColumnSet{Y: seed.Y, X: seed.X}
	result, err := bnb.Solve(inst, cols, pricer, cfg.Params())
	if err != nil && !errors.Is(err, bnb.ErrNodeLimit) {
		log.Error("solve failed: %v", err)

		return err
	}
	if err != nil {
		log.Warn("solve stopped early: %v", err)
	}

	log.Info("UB=%v gap=%v nodes=%d/%d", result.UB, result.Gap, result.NodesExplored, result.NodesCreated)

	plan, err := report.BuildPlan(inst, result.Incumbent)
	if err != nil {
		log.Error("plan construction failed: %v", err)

		return err
	}

	writer := report.FileWriter{Dir: cfg.OutputDir()}
	if err := report.WritePlan(writer, inst, plan); err != nil {
		log.Error("plan write failed: %v", err)

		return err
	}

	log.Info("wrote %d sheet(s) to %s", len(plan.Sheets), cfg.OutputDir())

	return nil
}
