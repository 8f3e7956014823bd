package entities

import (
	"fmt"
	"strings"
)

// LotSizeRule represents the lot sizing rule used to price a demand series
type LotSizeRule int

const (
	// DynamicLotSize bundles contiguous periods into orders at minimum total cost
	DynamicLotSize LotSizeRule = iota
	// LotForLot places one order per period
	LotForLot
	// SingleOrder covers the whole horizon with one order
	SingleOrder
)

// LotSizeRules lists every supported rule in display order
var LotSizeRules = []LotSizeRule{DynamicLotSize, LotForLot, SingleOrder}

// String method for LotSizeRule enum
func (l LotSizeRule) String() string {
	switch l {
	case DynamicLotSize:
		return "dynamic"
	case LotForLot:
		return "lot-for-lot"
	case SingleOrder:
		return "single-order"
	default:
		return "unknown"
	}
}

// ParseLotSizeRule converts a rule name into a LotSizeRule
func ParseLotSizeRule(name string) (LotSizeRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dynamic", "dp":
		return DynamicLotSize, nil
	case "lot-for-lot", "lotforlot", "l4l":
		return LotForLot, nil
	case "single-order", "singleorder", "single":
		return SingleOrder, nil
	default:
		return 0, fmt.Errorf("%w: unknown lot size rule %q", ErrInvalidInput, name)
	}
}
