package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/arohalabs/pocket-cfo-be/internal/catalog"
)

// gstRate is the NZ GST rate.
var gstRate = decimal.NewFromFloat(0.15)

// GSTBreakdown shows how a period's net GST position is reached.
// Zero-rated exports are reported but excluded from the sales
// calculation: they are zero-rated, not exempt.
type GSTBreakdown struct {
	Period           string  `json:"period"`
	TaxableSupplies  float64 `json:"taxableSupplies"`
	ZeroRatedExports float64 `json:"zeroRatedExports"`
	GSTOnSales       float64 `json:"gstOnSales"`
	InputTaxCredits  float64 `json:"inputTaxCredits"`
	NetPayable       float64 `json:"netPayable"`
}

// GSTOnSales returns 15% of taxable supplies.
func GSTOnSales(taxableSupplies float64) float64 {
	v, _ := decimal.NewFromFloat(taxableSupplies).Mul(gstRate).Float64()
	return v
}

// NetGSTPayable is GST on sales less input tax credits.
func NetGSTPayable(taxableSupplies, inputTaxCredits float64) float64 {
	sales := decimal.NewFromFloat(taxableSupplies).Mul(gstRate)
	v, _ := sales.Sub(decimal.NewFromFloat(inputTaxCredits)).Float64()
	return v
}

// BreakdownGST expands a GST obligation into its payable components.
func BreakdownGST(o catalog.GSTObligation) GSTBreakdown {
	return GSTBreakdown{
		Period:           o.Period,
		TaxableSupplies:  o.TaxableSupplies,
		ZeroRatedExports: o.ZeroRatedExports,
		GSTOnSales:       GSTOnSales(o.TaxableSupplies),
		InputTaxCredits:  o.InputTaxCredits,
		NetPayable:       NetGSTPayable(o.TaxableSupplies, o.InputTaxCredits),
	}
}

// CurrentGSTObligation returns the first obligation not yet paid, or the
// most recent one when everything is settled.
func CurrentGSTObligation(obligations []catalog.GSTObligation) (catalog.GSTObligation, bool) {
	if len(obligations) == 0 {
		return catalog.GSTObligation{}, false
	}
	for _, o := range obligations {
		if o.Status != "paid" {
			return o, true
		}
	}
	return obligations[0], true
}
