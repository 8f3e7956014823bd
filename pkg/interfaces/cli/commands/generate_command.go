package commands

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/lotsizing/pkg/infrastructure/repositories/csv"
)

// GenerateConfig holds configuration for scenario generation
type GenerateConfig struct {
	Periods     int     // Number of periods to generate
	BaseDemand  float64 // Mean demand per period
	Seasonality float64 // Relative amplitude of a yearly cycle (0 = flat)
	ZeroChance  float64 // Probability that a period has no demand
	HoldingCost float64 // Holding cost written to costs.csv
	OrderCost   float64 // Order cost written to costs.csv
	OutputDir   string  // Output directory for generated files
	Seed        int64   // Random seed for reproducible generation
	Help        bool    // Show help
	Verbose     bool    // Verbose output

	Out io.Writer // defaults to os.Stdout
}

// GenerateCommand handles scenario generation
type GenerateCommand struct {
	config GenerateConfig
	rand   *rand.Rand
	out    io.Writer
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(config GenerateConfig) *GenerateCommand {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	out := config.Out
	if out == nil {
		out = os.Stdout
	}

	return &GenerateCommand{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
		out:    out,
	}
}

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	if cmd.config.Help {
		cmd.printHelp()
		return nil
	}

	if err := cmd.validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Fprintf(cmd.out,
			"🔧 Generating scenario with %d periods, base demand %.1f, seasonality %.2f\n",
			cmd.config.Periods,
			cmd.config.BaseDemand,
			cmd.config.Seasonality,
		)
		fmt.Fprintf(cmd.out, "📁 Output directory: %s\n", cmd.config.OutputDir)
		fmt.Fprintf(cmd.out, "🎲 Random seed: %d\n", cmd.config.Seed)
	}

	if err := os.MkdirAll(cmd.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Fprintln(cmd.out, "📋 Generating demands.csv...")
	}
	if err := cmd.generateDemands(); err != nil {
		return fmt.Errorf("failed to generate demands: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Fprintln(cmd.out, "💰 Generating costs.csv...")
	}
	if err := cmd.generateCosts(); err != nil {
		return fmt.Errorf("failed to generate costs: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Fprintf(cmd.out, "✅ Scenario generated successfully in %s\n", cmd.config.OutputDir)
	}

	return nil
}

func (cmd *GenerateCommand) validate() error {
	switch {
	case cmd.config.OutputDir == "":
		return fmt.Errorf("output directory is required")
	case cmd.config.Periods < 0:
		return fmt.Errorf("periods must be non-negative, got %d", cmd.config.Periods)
	case cmd.config.BaseDemand < 0:
		return fmt.Errorf("base demand must be non-negative, got %v", cmd.config.BaseDemand)
	case cmd.config.Seasonality < 0 || cmd.config.Seasonality > 1:
		return fmt.Errorf("seasonality must be between 0 and 1, got %v", cmd.config.Seasonality)
	case cmd.config.ZeroChance < 0 || cmd.config.ZeroChance > 1:
		return fmt.Errorf("zero chance must be between 0 and 1, got %v", cmd.config.ZeroChance)
	case cmd.config.HoldingCost < 0 || cmd.config.OrderCost < 0:
		return fmt.Errorf("costs must be non-negative")
	}
	return nil
}

// generateDemands creates the demands.csv file
func (cmd *GenerateCommand) generateDemands() error {
	filePath := filepath.Join(cmd.config.OutputDir, csv.DemandsFileName)
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintln(file, "period,demand")

	for period := 0; period < cmd.config.Periods; period++ {
		qty := decimal.Zero
		if cmd.rand.Float64() >= cmd.config.ZeroChance {
			// Yearly cycle over 52 periods plus up to ±20% noise
			season := 1 + cmd.config.Seasonality*math.Sin(2*math.Pi*float64(period)/52)
			noise := 0.8 + 0.4*cmd.rand.Float64()
			qty = decimal.NewFromFloat(cmd.config.BaseDemand * season * noise).Round(1)
		}
		fmt.Fprintf(file, "%d,%s\n", period, qty.String())
	}

	return file.Close()
}

// generateCosts creates the costs.csv file
func (cmd *GenerateCommand) generateCosts() error {
	filePath := filepath.Join(cmd.config.OutputDir, csv.CostsFileName)
	content := fmt.Sprintf("holding_cost,order_cost\n%s,%s\n",
		decimal.NewFromFloat(cmd.config.HoldingCost).String(),
		decimal.NewFromFloat(cmd.config.OrderCost).String(),
	)
	return os.WriteFile(filePath, []byte(content), 0644)
}

// printHelp shows usage information
func (cmd *GenerateCommand) printHelp() {
	fmt.Fprintln(cmd.out, `Lot Sizing Scenario Generator

USAGE:
    lotsize generate [OPTIONS]

OPTIONS:
    -periods <N>        Number of periods to generate (default: 52)
    -base-demand <F>    Mean demand per period (default: 100)
    -seasonality <F>    Relative amplitude of a 52-period cycle, 0..1 (default: 0.3)
    -zero-chance <F>    Probability that a period has no demand, 0..1 (default: 0.1)
    -holding <F>        Holding cost per unit per period (default: 0.5)
    -order <F>          Fixed cost per order (default: 250)
    -output <DIR>       Output directory for generated files (required)
    -seed <N>           Random seed for reproducible generation (optional)
    -verbose            Enable verbose output
    -help               Show this help message

EXAMPLES:
    # Generate one year of weekly demand
    lotsize generate -output ./weekly

    # Generate a reproducible long horizon
    lotsize generate -periods 2000 -seed 12345 -output ./long_horizon -verbose`)
}
