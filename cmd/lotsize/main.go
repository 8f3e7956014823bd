package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/vsinha/lotsizing/pkg/interfaces/cli/commands"
	"github.com/vsinha/lotsizing/pkg/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(os.Args) > 1 && os.Args[1] == "generate" {
		runGenerate(ctx, os.Args[2:])
		return
	}

	defaults, err := config.LoadDefaults()
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	// Command line flags
	var (
		demand      = flag.String("demand", "", "Comma-separated demand per period")
		holdingCost = flag.String("holding", "", "Holding cost per unit per period")
		orderCost   = flag.String("order", "", "Fixed cost per order")
		periods     = flag.String("periods", "", "Expected number of periods (optional)")
		scenarioDir = flag.String(
			"scenario",
			"",
			"Path to scenario directory containing demands.csv and costs.csv",
		)
		demandsFile = flag.String("demands", "", "Path to demands CSV file")
		costsFile   = flag.String("costs", "", "Path to costs CSV file")
		rule        = flag.String("rule", defaults.Rule, "Lot sizing rule: dynamic, lot-for-lot, single-order")
		compare     = flag.Bool("compare", false, "Price the input with every rule")
		maxPeriods  = flag.Int("max-periods", defaults.MaxPeriods, "Maximum horizon length (0 = unlimited)")
		format      = flag.String("format", defaults.Format, "Output format: text, json, csv")
		outputDir   = flag.String("output", "", "Output directory for results (optional)")
		interactive = flag.Bool("interactive", false, "Prompt for input until quit")
		verbose     = flag.Bool("verbose", false, "Enable verbose output")
		help        = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	cmd := commands.NewLotSizeCommand(commands.Config{
		Demand:      *demand,
		HoldingCost: *holdingCost,
		OrderCost:   *orderCost,
		Periods:     *periods,
		ScenarioDir: *scenarioDir,
		DemandsFile: *demandsFile,
		CostsFile:   *costsFile,
		Rule:        *rule,
		Compare:     *compare,
		MaxPeriods:  *maxPeriods,
		Format:      *format,
		OutputDir:   *outputDir,
		Interactive: *interactive,
		Verbose:     *verbose,
		Help:        *help,
	})

	if err := cmd.Execute(ctx); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func runGenerate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var (
		periods     = fs.Int("periods", 52, "Number of periods to generate")
		baseDemand  = fs.Float64("base-demand", 100, "Mean demand per period")
		seasonality = fs.Float64("seasonality", 0.3, "Relative amplitude of a 52-period cycle")
		zeroChance  = fs.Float64("zero-chance", 0.1, "Probability that a period has no demand")
		holdingCost = fs.Float64("holding", 0.5, "Holding cost per unit per period")
		orderCost   = fs.Float64("order", 250, "Fixed cost per order")
		outputDir   = fs.String("output", "", "Output directory for generated files")
		seed        = fs.Int64("seed", 0, "Random seed (0 = time based)")
		verbose     = fs.Bool("verbose", false, "Enable verbose output")
		help        = fs.Bool("help", false, "Show help message")
	)
	fs.Parse(args)

	cmd := commands.NewGenerateCommand(commands.GenerateConfig{
		Periods:     *periods,
		BaseDemand:  *baseDemand,
		Seasonality: *seasonality,
		ZeroChance:  *zeroChance,
		HoldingCost: *holdingCost,
		OrderCost:   *orderCost,
		OutputDir:   *outputDir,
		Seed:        *seed,
		Verbose:     *verbose,
		Help:        *help,
	})

	if err := cmd.Execute(ctx); err != nil {
		config.Exitf("Error: %v", err)
	}
}
