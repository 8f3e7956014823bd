// Package parsing turns raw text from a user or file into the numbers the
// cost engine works with. Every failure wraps entities.ErrInvalidInput.
package parsing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/lotsizing/pkg/domain/entities"
)

// ParseDemandList parses comma-separated period demands such as "10, 20,0".
// Blank text yields an empty series.
func ParseDemandList(text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return []float64{}, nil
	}

	tokens := strings.Split(text, ",")
	demand := make([]float64, len(tokens))
	for i, token := range tokens {
		value, err := parseNumber(token)
		if err != nil {
			return nil, fmt.Errorf("%w: demand value %d: %v", entities.ErrInvalidInput, i+1, err)
		}
		demand[i] = value
	}
	return demand, nil
}

// ParseAmount parses a single named scalar such as a holding or order cost
func ParseAmount(name, text string) (float64, error) {
	value, err := parseNumber(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", entities.ErrInvalidInput, name, err)
	}
	return value, nil
}

// CheckPeriods verifies that periodsText, when given, matches the number of
// parsed demand values.
func CheckPeriods(demand []float64, periodsText string) error {
	periodsText = strings.TrimSpace(periodsText)
	if periodsText == "" {
		return nil
	}

	periods, err := strconv.Atoi(periodsText)
	if err != nil {
		return fmt.Errorf("%w: number of periods %q is not an integer", entities.ErrInvalidInput, periodsText)
	}
	if periods != len(demand) {
		return fmt.Errorf("%w: expected %d periods, got %d demand values", entities.ErrInvalidInput, periods, len(demand))
	}
	return nil
}

func parseNumber(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("value is empty")
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", text)
	}
	return d.InexactFloat64(), nil
}
