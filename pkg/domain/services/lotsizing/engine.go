package lotsizing

import (
	"fmt"

	"github.com/vsinha/lotsizing/pkg/domain/entities"
)

// Compute returns the minimum total ordering plus holding cost of satisfying
// demand from period 0 to the end of the horizon.
//
// Recurrence, with cost(p) the cheapest way to cover periods p..n-1:
//
//	cost(n) = 0
//	cost(p) = min over q in [p, n-1] of
//	          orderCost + holdingCost × Σ demand[p..q] × (q − p + 1) + cost(q+1)
//
// The table is filled from p = n-1 down to 0, so every cost(q+1) is memoized
// before cost(p) needs it and the call depth stays constant. A horizon whose
// total demand is zero needs no order at all and costs nothing; otherwise
// zero-demand periods are priced like any other.
//
// Errors:
//   - entities.ErrDomainViolation if any demand or cost is negative, NaN or infinite.
func Compute(demand []float64, holdingCost, orderCost float64) (float64, error) {
	if err := validate(demand, holdingCost, orderCost); err != nil {
		return 0, err
	}

	if entities.DemandSeries(demand).Total() == 0 {
		return 0, nil
	}

	n := len(demand)
	memo := make([]float64, n+1) // memo[n] == 0

	for p := n - 1; p >= 0; p-- {
		best := 0.0
		quantity := 0.0
		for q := p; q < n; q++ {
			quantity += demand[q]
			total := blockCost(quantity, q-p+1, holdingCost, orderCost) + memo[q+1]
			if q == p || total < best {
				best = total
			}
		}
		memo[p] = best
	}

	return memo[0], nil
}

// ComputeRule prices demand using the given lot size rule
func ComputeRule(rule entities.LotSizeRule, demand []float64, holdingCost, orderCost float64) (float64, error) {
	switch rule {
	case entities.DynamicLotSize:
		return Compute(demand, holdingCost, orderCost)
	case entities.LotForLot:
		return lotForLot(demand, holdingCost, orderCost)
	case entities.SingleOrder:
		return singleOrder(demand, holdingCost, orderCost)
	default:
		return 0, fmt.Errorf("unsupported lot size rule: %s", rule)
	}
}

// lotForLot orders every period separately
func lotForLot(demand []float64, holdingCost, orderCost float64) (float64, error) {
	if err := validate(demand, holdingCost, orderCost); err != nil {
		return 0, err
	}
	if entities.DemandSeries(demand).Total() == 0 {
		return 0, nil
	}

	total := 0.0
	for _, qty := range demand {
		total += blockCost(qty, 1, holdingCost, orderCost)
	}
	return total, nil
}

// singleOrder covers the whole horizon with one block
func singleOrder(demand []float64, holdingCost, orderCost float64) (float64, error) {
	if err := validate(demand, holdingCost, orderCost); err != nil {
		return 0, err
	}

	quantity := entities.DemandSeries(demand).Total()
	if quantity == 0 {
		return 0, nil
	}
	return blockCost(quantity, len(demand), holdingCost, orderCost), nil
}

// blockCost prices one order of quantity units held for span periods
func blockCost(quantity float64, span int, holdingCost, orderCost float64) float64 {
	return orderCost + holdingCost*quantity*float64(span)
}

func validate(demand []float64, holdingCost, orderCost float64) error {
	params := entities.CostParameters{HoldingCost: holdingCost, OrderCost: orderCost}
	if err := params.Validate(); err != nil {
		return err
	}
	return entities.DemandSeries(demand).Validate()
}
