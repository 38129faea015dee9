package risk

import (
	"math"

	"github.com/rustyeddy/lotsize/market"
	"github.com/rustyeddy/lotsize/pkg/num"
)

const (
	DailyLossPercent  = 2.0
	WeeklyLossPercent = 5.0
)

// Metrics are the secondary figures derived from a Sizing.
type Metrics struct {
	RiskReward      float64 `json:"risk_reward"`
	PositionValue   float64 `json:"position_value"`
	MarginRequired  float64 `json:"margin_required"`
	FreeMargin      float64 `json:"free_margin"`
	DailyLossLimit  float64 `json:"daily_loss_limit"`
	WeeklyLossLimit float64 `json:"weekly_loss_limit"`
}

// RR is reward over risk in pips. It is 0 unless both are positive.
func RR(takeProfitPips, stopLossPips float64) float64 {
	if takeProfitPips <= 0 || stopLossPips <= 0 {
		return 0
	}
	return takeProfitPips / stopLossPips
}

// Measure derives margin and exposure figures for s. A non-positive or
// non-finite marginRate falls back to market.DefaultMarginRate. Figures
// that overflow are reported as 0.
func Measure(in Inputs, s Sizing, marginRate float64) Metrics {
	in = in.sanitized()
	if marginRate <= 0 || math.IsNaN(marginRate) || math.IsInf(marginRate, 0) {
		marginRate = market.DefaultMarginRate
	}

	m := Metrics{
		RiskReward:      RR(in.TakeProfitPips, in.StopLossPips),
		PositionValue:   num.Finite(s.QuantizedLotSize * market.StandardLot),
		DailyLossLimit:  in.Balance * (DailyLossPercent / 100),
		WeeklyLossLimit: in.Balance * (WeeklyLossPercent / 100),
	}
	m.MarginRequired = num.Finite(m.PositionValue * marginRate)
	m.FreeMargin = math.Max(0, in.Balance-m.MarginRequired-s.MoneyAtRisk)
	return m
}
