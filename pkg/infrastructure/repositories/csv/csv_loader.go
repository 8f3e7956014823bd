package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vsinha/lotsizing/pkg/domain/entities"
	"github.com/vsinha/lotsizing/pkg/infrastructure/parsing"
)

const (
	// DemandsFileName is the demand file inside a scenario directory
	DemandsFileName = "demands.csv"
	// CostsFileName is the cost file inside a scenario directory
	CostsFileName = "costs.csv"
)

// Loader handles loading lot sizing scenarios from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadScenario loads demands.csv and costs.csv from a scenario directory
func (l *Loader) LoadScenario(dir string) ([]float64, entities.CostParameters, error) {
	demand, err := l.LoadDemands(filepath.Join(dir, DemandsFileName))
	if err != nil {
		return nil, entities.CostParameters{}, err
	}

	costs, err := l.LoadCosts(filepath.Join(dir, CostsFileName))
	if err != nil {
		return nil, entities.CostParameters{}, err
	}

	return demand, costs, nil
}

// LoadDemands loads period demands from a CSV file. Periods must be listed
// in order starting at 0.
func (l *Loader) LoadDemands(filename string) ([]float64, error) {
	expectedHeader := []string{"period", "demand"}
	records, err := readRecords(filename, "demands", expectedHeader)
	if err != nil {
		return nil, err
	}

	demand := make([]float64, 0, len(records))
	for i, record := range records {
		period, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: demands CSV row %d: invalid period %q", entities.ErrInvalidInput, i+2, record[0])
		}
		if period != i {
			return nil, fmt.Errorf("%w: demands CSV row %d: expected period %d, got %d", entities.ErrInvalidInput, i+2, i, period)
		}

		qty, err := parsing.ParseAmount("demand", record[1])
		if err != nil {
			return nil, fmt.Errorf("demands CSV row %d: %w", i+2, err)
		}
		demand = append(demand, qty)
	}

	return demand, nil
}

// LoadCosts loads holding and order cost from a single-row CSV file
func (l *Loader) LoadCosts(filename string) (entities.CostParameters, error) {
	expectedHeader := []string{"holding_cost", "order_cost"}
	records, err := readRecords(filename, "costs", expectedHeader)
	if err != nil {
		return entities.CostParameters{}, err
	}
	if len(records) != 1 {
		return entities.CostParameters{}, fmt.Errorf("%w: costs CSV must have exactly one data row, got %d", entities.ErrInvalidInput, len(records))
	}

	holding, err := parsing.ParseAmount("holding cost", records[0][0])
	if err != nil {
		return entities.CostParameters{}, fmt.Errorf("costs CSV row 2: %w", err)
	}
	order, err := parsing.ParseAmount("order cost", records[0][1])
	if err != nil {
		return entities.CostParameters{}, fmt.Errorf("costs CSV row 2: %w", err)
	}

	return entities.CostParameters{HoldingCost: holding, OrderCost: order}, nil
}

// readRecords reads a CSV file, checks its header and returns the data rows
func readRecords(filename, kind string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", kind, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s CSV: %v", entities.ErrInvalidInput, kind, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s CSV must have a header row", entities.ErrInvalidInput, kind)
	}

	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("%w: %s CSV header mismatch. Expected: %v, Got: %v", entities.ErrInvalidInput, kind, expectedHeader, header)
	}

	rows := records[1:]
	for i, record := range rows {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%w: %s CSV row %d: expected %d columns, got %d", entities.ErrInvalidInput, kind, i+2, len(expectedHeader), len(record))
		}
	}

	return rows, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}
