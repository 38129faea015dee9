package risk

import (
	"math"

	"github.com/rustyeddy/lotsize/market"
	"github.com/rustyeddy/lotsize/pkg/num"
	"github.com/shopspring/decimal"
)

// MinAdjustedLot is the smallest lot AdjustedLotSize will recommend.
const MinAdjustedLot = 0.01

// Sizing is the risk-based position size for one set of Inputs.
type Sizing struct {
	MoneyAtRisk         float64 `json:"money_at_risk"`
	PipValuePerLot      float64 `json:"pip_value_per_lot"`
	RawLotSize          float64 `json:"raw_lot_size"`
	QuantizedLotSize    float64 `json:"quantized_lot_size"`
	PipValueForPosition float64 `json:"pip_value_for_position"`
	LotStep             float64 `json:"lot_step"`
}

// Size computes money at risk and the lot size that loses exactly that
// amount at the stop, floored to the lot step.
func Size(in Inputs) Sizing {
	in = in.sanitized()

	s := Sizing{
		MoneyAtRisk:    num.Finite(in.Balance * (in.RiskPercent / 100)),
		PipValuePerLot: market.ResolvePipValue(in.Pair, in.CustomPipValue),
		LotStep:        lotStep(in.LotStep),
	}
	s.RawLotSize = rawLots(s.MoneyAtRisk, in.StopLossPips, s.PipValuePerLot)
	s.QuantizedLotSize = Quantize(s.RawLotSize, s.LotStep)
	s.PipValueForPosition = PipValueForPosition(s.PipValuePerLot, s.QuantizedLotSize)
	return s
}

// rawLots is 0 when the stop or pip value is unset, and when the
// quotient overflows.
func rawLots(moneyAtRisk, stopPips, pipValue float64) float64 {
	if stopPips <= 0 || pipValue <= 0 {
		return 0
	}
	return num.Finite(moneyAtRisk / (stopPips * pipValue))
}

func lotStep(step float64) float64 {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return DefaultLotStep
	}
	return step
}

// Quantize floors lots to a multiple of step. It never rounds up, so the
// result is never larger than lots. The result is rounded to 5 decimals
// to drop binary floating point noise.
func Quantize(lots, step float64) float64 {
	lots = num.NonNegative(lots)
	step = lotStep(step)

	var floored float64
	factor := math.Round(1 / step)
	if factor >= 1 && math.Abs(factor*step-1) < 1e-9 {
		floored = math.Floor(lots*factor) / factor
	} else {
		// steps like 0.03 or 5 have no integer reciprocal
		floored = math.Floor(lots/step) * step
	}
	floored = math.Max(0, floored)

	rounded := num.Round(floored, 5)
	if rounded > lots {
		// steps finer than 5 decimals, or a product one ulp above lots
		rounded, _ = decimal.NewFromFloat(floored).Truncate(5).Float64()
		rounded = math.Min(rounded, lots)
	}
	return rounded
}

// PipValueForPosition is the account currency value of one pip for lots.
func PipValueForPosition(pipValuePerLot, lots float64) float64 {
	return num.Finite(pipValuePerLot * lots)
}

// VolatilityAdjustment shrinks size on pairs running hotter than the
// 100 pip reference and grows it on quieter ones.
func VolatilityAdjustment(pair string) float64 {
	return market.DefaultVolatility / market.CurrentVolatility(pair)
}

// AdjustedLotSize scales the raw lot size by account tier and pair
// volatility, with a floor of MinAdjustedLot. Unlike Size it is not
// quantized to the lot step.
func AdjustedLotSize(in Inputs) float64 {
	in = in.sanitized()
	s := Size(in)
	adjusted := s.RawLotSize * in.Tier.Multiplier() * VolatilityAdjustment(in.Pair)
	return math.Max(MinAdjustedLot, num.Finite(adjusted))
}
