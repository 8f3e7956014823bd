package entities

import (
	"fmt"
	"math"
)

// DemandSeries holds the demand of each period, indexed from period 0
type DemandSeries []float64

// Len returns the horizon length
func (d DemandSeries) Len() int {
	return len(d)
}

// Total returns the summed demand over the horizon
func (d DemandSeries) Total() float64 {
	total := 0.0
	for _, qty := range d {
		total += qty
	}
	return total
}

// Validate checks that every period demand is a finite non-negative number
func (d DemandSeries) Validate() error {
	for period, qty := range d {
		if err := checkAmount(qty); err != nil {
			return fmt.Errorf("%w: demand for period %d %s", ErrDomainViolation, period, err)
		}
	}
	return nil
}

// NewDemandSeries creates a validated DemandSeries. The input slice is copied.
func NewDemandSeries(demand []float64) (DemandSeries, error) {
	series := make(DemandSeries, len(demand))
	copy(series, demand)
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return series, nil
}

// checkAmount returns a short reason when v is not a finite non-negative number
func checkAmount(v float64) error {
	switch {
	case math.IsNaN(v):
		return fmt.Errorf("is not a number")
	case math.IsInf(v, 0):
		return fmt.Errorf("must be finite, got %v", v)
	case v < 0:
		return fmt.Errorf("must be non-negative, got %v", v)
	}
	return nil
}
