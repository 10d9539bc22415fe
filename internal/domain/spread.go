package domain

import "github.com/shopspring/decimal"

const pricePlaces = 6

var (
	one     = decimal.NewFromInt(1)
	bpsBase = decimal.NewFromInt(20000) // 10000 bps per unit, halved
)

// ApplySpread splits spreadBPS symmetrically around mid and rounds both sides to
// six decimal places. mid is not range checked.
func ApplySpread(mid float64, spreadBPS int) (sell, buy float64) {
	half := decimal.NewFromInt(int64(spreadBPS)).Div(bpsBase)
	m := decimal.NewFromFloat(mid)

	sell = m.Mul(one.Add(half)).Round(pricePlaces).InexactFloat64()
	buy = m.Mul(one.Sub(half)).Round(pricePlaces).InexactFloat64()
	return sell, buy
}
