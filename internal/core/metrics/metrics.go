// Package metrics holds the derived financial calculations: pure
// functions over catalog data, with decimal arithmetic for money.
package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
)

// recoveryRate is the assumed share of overdue receivables that focused
// collections work actually recovers.
var recoveryRate = decimal.NewFromFloat(0.70)

// TotalOverdue sums the receivable aging buckets.
func TotalOverdue(buckets []catalog.ARAgingBucket) float64 {
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(decimal.NewFromFloat(b.Amount))
	}
	v, _ := total.Float64()
	return v
}

// CollectionOpportunity estimates recoverable cash from an overdue total,
// rounded to the nearest dollar.
func CollectionOpportunity(totalOverdue float64) float64 {
	v, _ := decimal.NewFromFloat(totalOverdue).Mul(recoveryRate).Round(0).Float64()
	return v
}

// Ratio divides numerator by denominator, returning 0 for an empty
// denominator rather than Inf/NaN.
func Ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}
