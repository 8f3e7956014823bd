package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vsinha/lotsizing/pkg/application/dto"
)

// CSVFileName is the file written by the csv format
const CSVFileName = "lot_sizing_results.csv"

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	Writer    io.Writer // defaults to os.Stdout
}

func (c Config) writer() io.Writer {
	if c.Writer == nil {
		return os.Stdout
	}
	return c.Writer
}

var printer = message.NewPrinter(language.English)

// FormatCost renders a cost with two decimals and thousands grouping
func FormatCost(cost float64) string {
	return printer.Sprintf("%.2f", cost)
}

// Generate creates output in the specified format
func Generate(results []*dto.LotSizingResult, config Config) error {
	switch config.Format {
	case "text", "":
		return generateTextOutput(results, config)
	case "json":
		return generateJSONOutput(results, config)
	case "csv":
		return generateCSVOutput(results, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(results []*dto.LotSizingResult, config Config) error {
	w := config.writer()

	if len(results) == 1 {
		result := results[0]
		if config.Verbose {
			fmt.Fprintf(w, "📊 Lot Sizing Result\n")
			fmt.Fprintf(w, "====================\n\n")
			fmt.Fprintf(w, "Rule: %s\n", result.RuleName)
			fmt.Fprintf(w, "Periods: %d\n", result.Periods)
			fmt.Fprintf(w, "Total Demand: %s\n", FormatCost(result.TotalDemand))
			fmt.Fprintf(w, "Holding Cost: %s\n", FormatCost(result.HoldingCost))
			fmt.Fprintf(w, "Order Cost: %s\n", FormatCost(result.OrderCost))
			fmt.Fprintf(w, "Compute Time: %v\n\n", result.Duration)
		}
		fmt.Fprintf(w, "Minimum total cost: %s\n", FormatCost(result.MinimumCost))
		return nil
	}

	fmt.Fprintf(w, "📊 Lot Sizing Comparison\n")
	fmt.Fprintf(w, "========================\n\n")
	fmt.Fprintf(w, "%-15s %-8s %15s\n", "Rule", "Periods", "Total Cost")
	fmt.Fprintf(w, "%-15s %-8s %15s\n", "---------------", "--------", "---------------")
	for _, result := range results {
		fmt.Fprintf(w, "%-15s %-8d %15s\n", result.RuleName, result.Periods, FormatCost(result.MinimumCost))
	}
	return nil
}

// jsonResult adds the fixed-point cost to the serialized result
type jsonResult struct {
	*dto.LotSizingResult
	MinimumCostFixed string `json:"minimum_cost_fixed"`
}

// generateJSONOutput creates JSON output
func generateJSONOutput(results []*dto.LotSizingResult, config Config) error {
	payload := make([]jsonResult, len(results))
	for i, result := range results {
		payload[i] = jsonResult{LotSizingResult: result, MinimumCostFixed: result.CostFixed()}
	}

	var jsonData []byte
	var err error
	if len(payload) == 1 {
		jsonData, err = json.MarshalIndent(payload[0], "", "  ")
	} else {
		jsonData, err = json.MarshalIndent(payload, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Fprintln(config.writer(), string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "lot_sizing_results.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(config.writer(), "💾 JSON results saved to: %s\n", filename)
	}
	return nil
}

// generateCSVOutput creates CSV output
func generateCSVOutput(results []*dto.LotSizingResult, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, CSVFileName)
	if err := writeResultsCSV(results, filename); err != nil {
		return fmt.Errorf("failed to write results CSV: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(config.writer(), "💾 CSV results saved to: %s\n", filename)
	}
	return nil
}

func writeResultsCSV(results []*dto.LotSizingResult, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{"run_id", "rule", "periods", "total_demand", "holding_cost", "order_cost", "minimum_cost"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, result := range results {
		record := []string{
			result.RunID,
			result.RuleName,
			strconv.Itoa(result.Periods),
			strconv.FormatFloat(result.TotalDemand, 'f', -1, 64),
			strconv.FormatFloat(result.HoldingCost, 'f', -1, 64),
			strconv.FormatFloat(result.OrderCost, 'f', -1, 64),
			result.CostFixed(),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}
