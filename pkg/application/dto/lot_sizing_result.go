package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/lotsizing/pkg/domain/entities"
)

// LotSizingResult contains the outcome of pricing one demand series
type LotSizingResult struct {
	RunID       string               `json:"run_id"`
	Rule        entities.LotSizeRule `json:"-"`
	RuleName    string               `json:"rule"`
	Periods     int                  `json:"periods"`
	TotalDemand float64              `json:"total_demand"`
	HoldingCost float64              `json:"holding_cost"`
	OrderCost   float64              `json:"order_cost"`
	MinimumCost float64              `json:"minimum_cost"`
	ComputedAt  time.Time            `json:"computed_at"`
	Duration    time.Duration        `json:"duration_ns"`
}

// CostFixed returns MinimumCost rounded half away from zero to two decimals
func (r *LotSizingResult) CostFixed() string {
	return decimal.NewFromFloat(r.MinimumCost).StringFixed(2)
}
