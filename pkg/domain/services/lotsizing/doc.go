// Package lotsizing prices multi-period demand under a fixed order cost and a
// per-unit holding cost.
//
// The central operation is Compute, which returns the minimum total cost of
// covering periods 0..n-1 when each order covers a contiguous block of
// periods [p, q] and costs
//
//	orderCost + holdingCost × (demand[p] + … + demand[q]) × (q − p + 1)
//
// The whole batch is charged for the full span of the block. This is the
// model's holding-cost approximation and is kept as is.
//
// Compute runs in O(n²) time with an O(n) memo table that lives only for the
// duration of one call, so concurrent calls never share state.
package lotsizing
