package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vsinha/lotsizing/pkg/application/dto"
	"github.com/vsinha/lotsizing/pkg/domain/entities"
	"github.com/vsinha/lotsizing/pkg/domain/services/lotsizing"
	"github.com/vsinha/lotsizing/pkg/infrastructure/parsing"
)

// DefaultMaxPeriods bounds the horizon accepted by NewLotSizingService
const DefaultMaxPeriods = 5000

// ErrHorizonTooLong is returned when a demand series exceeds ServiceConfig.MaxPeriods
var ErrHorizonTooLong = errors.New("horizon too long")

// ServiceConfig holds configuration for the lot sizing service
type ServiceConfig struct {
	// MaxPeriods limits the horizon length (0 = unlimited)
	MaxPeriods int
	// Rule selects the lot sizing rule used by Plan
	Rule entities.LotSizeRule
}

// PlanRequest carries already-parsed numeric input
type PlanRequest struct {
	Demand      []float64
	HoldingCost float64
	OrderCost   float64
}

// TextRequest carries raw text input as typed by a user
type TextRequest struct {
	Demand      string // comma-separated period demands
	HoldingCost string
	OrderCost   string
	Periods     string // optional expected period count
}

// LotSizingService validates input at the boundary and prices it with the
// lot sizing engine. It holds no per-run state and is safe for concurrent use.
type LotSizingService struct {
	config ServiceConfig
}

// NewLotSizingService creates a new service with default configuration
func NewLotSizingService() *LotSizingService {
	return NewLotSizingServiceWithConfig(ServiceConfig{
		MaxPeriods: DefaultMaxPeriods,
		Rule:       entities.DynamicLotSize,
	})
}

// NewLotSizingServiceWithConfig creates a new service with custom configuration
func NewLotSizingServiceWithConfig(config ServiceConfig) *LotSizingService {
	return &LotSizingService{config: config}
}

// Config returns the service configuration
func (s *LotSizingService) Config() ServiceConfig {
	return s.config
}

// Plan prices the request with the configured rule
func (s *LotSizingService) Plan(ctx context.Context, req PlanRequest) (*dto.LotSizingResult, error) {
	return s.plan(ctx, s.config.Rule, req)
}

// PlanText parses raw text input and prices it with the configured rule.
// Parsing always completes before the engine is invoked.
func (s *LotSizingService) PlanText(ctx context.Context, req TextRequest) (*dto.LotSizingResult, error) {
	parsed, err := ParseTextRequest(req)
	if err != nil {
		return nil, err
	}
	return s.Plan(ctx, parsed)
}

// Compare prices the request with every lot sizing rule, in LotSizeRules order
func (s *LotSizingService) Compare(ctx context.Context, req PlanRequest) ([]*dto.LotSizingResult, error) {
	results := make([]*dto.LotSizingResult, 0, len(entities.LotSizeRules))
	for _, rule := range entities.LotSizeRules {
		result, err := s.plan(ctx, rule, req)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// ParseTextRequest converts raw text input into a PlanRequest
func ParseTextRequest(req TextRequest) (PlanRequest, error) {
	demand, err := parsing.ParseDemandList(req.Demand)
	if err != nil {
		return PlanRequest{}, err
	}
	if err := parsing.CheckPeriods(demand, req.Periods); err != nil {
		return PlanRequest{}, err
	}
	holding, err := parsing.ParseAmount("holding cost", req.HoldingCost)
	if err != nil {
		return PlanRequest{}, err
	}
	order, err := parsing.ParseAmount("order cost", req.OrderCost)
	if err != nil {
		return PlanRequest{}, err
	}
	return PlanRequest{Demand: demand, HoldingCost: holding, OrderCost: order}, nil
}

func (s *LotSizingService) plan(ctx context.Context, rule entities.LotSizeRule, req PlanRequest) (*dto.LotSizingResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	series, err := entities.NewDemandSeries(req.Demand)
	if err != nil {
		return nil, err
	}
	params, err := entities.NewCostParameters(req.HoldingCost, req.OrderCost)
	if err != nil {
		return nil, err
	}
	if s.config.MaxPeriods > 0 && series.Len() > s.config.MaxPeriods {
		return nil, fmt.Errorf("%w: %d periods exceeds limit of %d", ErrHorizonTooLong, series.Len(), s.config.MaxPeriods)
	}

	startTime := time.Now()
	cost, err := lotsizing.ComputeRule(rule, series, params.HoldingCost, params.OrderCost)
	if err != nil {
		return nil, fmt.Errorf("failed to compute lot sizing cost: %w", err)
	}

	return &dto.LotSizingResult{
		RunID:       uuid.NewString(),
		Rule:        rule,
		RuleName:    rule.String(),
		Periods:     series.Len(),
		TotalDemand: series.Total(),
		HoldingCost: params.HoldingCost,
		OrderCost:   params.OrderCost,
		MinimumCost: cost,
		ComputedAt:  startTime,
		Duration:    time.Since(startTime),
	}, nil
}
