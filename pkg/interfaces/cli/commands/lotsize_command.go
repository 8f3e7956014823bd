package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vsinha/lotsizing/pkg/application/dto"
	"github.com/vsinha/lotsizing/pkg/application/services"
	"github.com/vsinha/lotsizing/pkg/domain/entities"
	"github.com/vsinha/lotsizing/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/lotsizing/pkg/interfaces/cli/output"
)

// Config holds configuration for the lot sizing command
type Config struct {
	Demand      string
	HoldingCost string
	OrderCost   string
	Periods     string
	ScenarioDir string
	DemandsFile string
	CostsFile   string
	Rule        string
	Compare     bool
	MaxPeriods  int
	Format      string
	OutputDir   string
	Interactive bool
	Verbose     bool
	Help        bool

	In  io.Reader // defaults to os.Stdin
	Out io.Writer // defaults to os.Stdout
}

// LotSizeCommand handles the main lot sizing execution logic
type LotSizeCommand struct {
	config Config
	out    io.Writer
}

// NewLotSizeCommand creates a new lot sizing command with the given configuration
func NewLotSizeCommand(config Config) *LotSizeCommand {
	out := config.Out
	if out == nil {
		out = os.Stdout
	}
	return &LotSizeCommand{
		config: config,
		out:    out,
	}
}

// Execute runs the lot sizing command
func (c *LotSizeCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	rule, err := entities.ParseLotSizeRule(c.config.Rule)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	service := services.NewLotSizingServiceWithConfig(services.ServiceConfig{
		MaxPeriods: c.config.MaxPeriods,
		Rule:       rule,
	})

	if c.config.Interactive {
		in := c.config.In
		if in == nil {
			in = os.Stdin
		}
		return NewInteractiveCommand(service, in, c.out).Run(ctx)
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	req, err := c.loadRequest()
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Fprintf(c.out, "🚀 Lot Sizing CLI\n")
		fmt.Fprintf(c.out, "Periods: %d\n", len(req.Demand))
		fmt.Fprintf(c.out, "Output format: %s\n", c.config.Format)
		fmt.Fprintln(c.out, "🔄 Computing minimum cost...")
	}

	var results []*dto.LotSizingResult
	if c.config.Compare {
		results, err = service.Compare(ctx, req)
	} else {
		var result *dto.LotSizingResult
		result, err = service.Plan(ctx, req)
		results = []*dto.LotSizingResult{result}
	}
	if err != nil {
		return fmt.Errorf("error computing lot sizing cost: %w", err)
	}

	if c.config.Verbose {
		fmt.Fprintf(c.out, "✅ Computed %d result(s)\n\n", len(results))
	}

	err = output.Generate(results, output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
		Writer:    c.out,
	})
	if err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	return nil
}

// validateInputs checks that exactly one input source was given
func (c *LotSizeCommand) validateInputs() error {
	sources := 0
	if c.config.ScenarioDir != "" {
		sources++
	}
	if c.config.DemandsFile != "" || c.config.CostsFile != "" {
		if c.config.DemandsFile == "" || c.config.CostsFile == "" {
			return fmt.Errorf("-demands and -costs must be given together")
		}
		sources++
	}
	if c.config.Demand != "" || c.config.HoldingCost != "" || c.config.OrderCost != "" {
		sources++
	}

	switch sources {
	case 0:
		return fmt.Errorf("must specify -demand with -holding and -order, -scenario, or -demands with -costs")
	case 1:
		return nil
	default:
		return fmt.Errorf("input sources are mutually exclusive")
	}
}

// loadRequest parses the configured input source into a plan request
func (c *LotSizeCommand) loadRequest() (services.PlanRequest, error) {
	loader := csv.NewLoader()

	switch {
	case c.config.ScenarioDir != "":
		demand, costs, err := loader.LoadScenario(c.config.ScenarioDir)
		if err != nil {
			return services.PlanRequest{}, fmt.Errorf("error loading scenario: %w", err)
		}
		return services.PlanRequest{Demand: demand, HoldingCost: costs.HoldingCost, OrderCost: costs.OrderCost}, nil

	case c.config.DemandsFile != "":
		demand, err := loader.LoadDemands(c.config.DemandsFile)
		if err != nil {
			return services.PlanRequest{}, fmt.Errorf("error loading demands: %w", err)
		}
		costs, err := loader.LoadCosts(c.config.CostsFile)
		if err != nil {
			return services.PlanRequest{}, fmt.Errorf("error loading costs: %w", err)
		}
		return services.PlanRequest{Demand: demand, HoldingCost: costs.HoldingCost, OrderCost: costs.OrderCost}, nil

	default:
		req, err := services.ParseTextRequest(services.TextRequest{
			Demand:      c.config.Demand,
			HoldingCost: c.config.HoldingCost,
			OrderCost:   c.config.OrderCost,
			Periods:     c.config.Periods,
		})
		if err != nil {
			return services.PlanRequest{}, fmt.Errorf("error parsing input: %w", err)
		}
		return req, nil
	}
}

// showHelp displays the help message
func (c *LotSizeCommand) showHelp() {
	fmt.Fprint(c.out, `Lot Sizing CLI - minimum ordering plus holding cost over a planning horizon

USAGE:
    lotsize -demand <list> -holding <cost> -order <cost>
    lotsize -scenario <directory>
    lotsize -demands <file> -costs <file>
    lotsize -interactive
    lotsize generate [OPTIONS]

OPTIONS:
    -demand <list>      Comma-separated demand per period, e.g. "10,10,0,25"
    -holding <cost>     Holding cost per unit per period
    -order <cost>       Fixed cost per order
    -periods <n>        Expected number of periods (optional check)
    -scenario <dir>     Scenario directory containing demands.csv and costs.csv
    -demands <file>     Path to demands CSV file
    -costs <file>       Path to costs CSV file
    -rule <name>        Lot sizing rule: dynamic, lot-for-lot, single-order
    -compare            Price the input with every rule
    -max-periods <n>    Reject horizons longer than n periods (0 = unlimited)
    -format <fmt>       Output format: text, json, csv
    -output <dir>       Output directory for results (required for csv)
    -interactive        Prompt for input repeatedly until "quit"
    -verbose            Enable verbose output
    -help               Show this help message

ENVIRONMENT:
    LOTSIZE_MAX_PERIODS, LOTSIZE_RULE, LOTSIZE_FORMAT set flag defaults

CSV FILE FORMATS:

demands.csv:
    period,demand
    0,10
    1,10

costs.csv:
    holding_cost,order_cost
    1,50

EXAMPLES:
    lotsize -demand 10,10 -holding 1 -order 50
    lotsize -scenario examples/seasonal -compare -format json
`)
}
