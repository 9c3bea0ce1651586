// Package fees computes marketplace fees and net profit for a sale.
// All arithmetic is done on decimals; no value passes through a float.
package fees

import "github.com/shopspring/decimal"

// Marketplace commission: 13.25% of the gross sale price plus a flat
// $0.30 per order. Both constants must stay exact to reproduce the
// ledger entries of prior sales.
var (
	commissionRate = decimal.RequireFromString("0.1325")
	flatFee        = decimal.RequireFromString("0.30")
)

// MarketplaceFee returns the marketplace commission for a gross sale
// price, rounded to 2 decimal places. A zero gross still incurs the
// flat fee.
func MarketplaceFee(gross decimal.Decimal) decimal.Decimal {
	return gross.Mul(commissionRate).Add(flatFee).Round(2)
}

// NetProfit returns the seller's realized profit for a sale: gross
// minus the marketplace fee, advertising fee, shipping cost, packaging
// cost, and original acquisition cost, rounded to 2 decimal places.
// The result may be negative.
func NetProfit(gross, marketplaceFee, advertisingFee, shippingCost, packagingCost, acquisitionCost decimal.Decimal) decimal.Decimal {
	return gross.
		Sub(marketplaceFee).
		Sub(advertisingFee).
		Sub(shippingCost).
		Sub(packagingCost).
		Sub(acquisitionCost).
		Round(2)
}
