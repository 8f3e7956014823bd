package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/lotsizing/pkg/application/services"
	"github.com/vsinha/lotsizing/pkg/domain/entities"
	"github.com/vsinha/lotsizing/pkg/interfaces/cli/output"
)

func main() {
	ctx := context.Background()

	// Twelve weeks of turbopump seal demand, with two idle weeks
	req := services.PlanRequest{
		Demand:      []float64{40, 25, 0, 60, 35, 35, 0, 80, 45, 20, 50, 30},
		HoldingCost: 0.4,
		OrderCost:   120,
	}

	service := services.NewLotSizingService()

	fmt.Println("🚀 Pricing replenishment for 12 weeks of demand...")
	fmt.Printf("Holding cost: %.2f per unit per week, order cost: %.2f\n\n", req.HoldingCost, req.OrderCost)

	results, err := service.Compare(ctx, req)
	if err != nil {
		fmt.Printf("❌ Lot sizing failed: %v\n", err)
		return
	}

	if err := output.Generate(results, output.Config{Format: "text"}); err != nil {
		fmt.Printf("❌ Output failed: %v\n", err)
		return
	}

	// Savings of the optimal plan over ordering every week
	costs := map[entities.LotSizeRule]decimal.Decimal{}
	for _, result := range results {
		costs[result.Rule] = decimal.NewFromFloat(result.MinimumCost)
	}
	savings := costs[entities.LotForLot].Sub(costs[entities.DynamicLotSize])
	fmt.Printf("\n💡 Batching saves %s over lot-for-lot\n", savings.StringFixed(2))
}
