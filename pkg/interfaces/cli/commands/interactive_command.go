package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vsinha/lotsizing/pkg/application/services"
	"github.com/vsinha/lotsizing/pkg/domain/entities"
	"github.com/vsinha/lotsizing/pkg/interfaces/cli/output"
)

// MaxLineBytes bounds one line of interactive input
const MaxLineBytes = 4 << 20

// InvalidInputMessage is shown when a line cannot be parsed into numbers
const InvalidInputMessage = "Invalid input! Please enter numeric values."

// InteractiveCommand prompts for demand and costs until the input ends.
// A bad entry is reported and the session continues.
type InteractiveCommand struct {
	service *services.LotSizingService
	scanner *bufio.Scanner
	out     io.Writer
}

// NewInteractiveCommand creates an interactive session reading from in
func NewInteractiveCommand(service *services.LotSizingService, in io.Reader, out io.Writer) *InteractiveCommand {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	return &InteractiveCommand{
		service: service,
		scanner: scanner,
		out:     out,
	}
}

// Run loops over prompts until EOF, "quit" or "exit", or ctx is cancelled
func (c *InteractiveCommand) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, `Lot sizing calculator. Type "quit" to exit.`)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		demand, ok := c.prompt("Demand per period (comma-separated): ")
		if !ok {
			return c.scanner.Err()
		}
		holding, ok := c.prompt("Holding cost per unit per period: ")
		if !ok {
			return c.scanner.Err()
		}
		order, ok := c.prompt("Order cost (per order): ")
		if !ok {
			return c.scanner.Err()
		}

		result, err := c.service.PlanText(ctx, services.TextRequest{
			Demand:      demand,
			HoldingCost: holding,
			OrderCost:   order,
		})
		switch {
		case err == nil:
			fmt.Fprintf(c.out, "Minimum total cost: %s\n\n", output.FormatCost(result.MinimumCost))
		case errors.Is(err, entities.ErrInvalidInput):
			fmt.Fprintf(c.out, "%s (%v)\n\n", InvalidInputMessage, err)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		default:
			fmt.Fprintf(c.out, "Error: %v\n\n", err)
		}
	}
}

// prompt writes label and reads one line. ok is false when the session should end.
func (c *InteractiveCommand) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.scanner.Scan() {
		fmt.Fprintln(c.out)
		return "", false
	}

	line := strings.TrimSpace(c.scanner.Text())
	switch strings.ToLower(line) {
	case "quit", "exit":
		return "", false
	}
	return line, true
}
