package entities

import "fmt"

// CostParameters holds the cost rates applied to every order
type CostParameters struct {
	HoldingCost float64 // cost per unit per period held
	OrderCost   float64 // fixed cost per order
}

// Validate checks that both rates are finite and non-negative
func (c CostParameters) Validate() error {
	if err := checkAmount(c.HoldingCost); err != nil {
		return fmt.Errorf("%w: holding cost %s", ErrDomainViolation, err)
	}
	if err := checkAmount(c.OrderCost); err != nil {
		return fmt.Errorf("%w: order cost %s", ErrDomainViolation, err)
	}
	return nil
}

// NewCostParameters creates validated CostParameters
func NewCostParameters(holdingCost, orderCost float64) (*CostParameters, error) {
	params := CostParameters{HoldingCost: holdingCost, OrderCost: orderCost}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return &params, nil
}
