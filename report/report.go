// Package report renders calculations as plain text for copying.
package report

import (
	"fmt"
	"strings"

	"github.com/rustyeddy/lotsize/risk"
)

// Line is one "Label: value" entry.
type Line struct {
	Label string
	Value string
}

// Lines lists the figures of c in display order.
func Lines(c risk.Calculation, currency string) []Line {
	money := func(x float64) string { return fmt.Sprintf("%.2f %s", x, currency) }

	out := []Line{
		{"Pair", c.Inputs.Pair},
		{"Balance", money(c.Inputs.Balance)},
		{"Risk", fmt.Sprintf("%g%%", c.Inputs.RiskPercent)},
		{"Stop Loss", fmt.Sprintf("%g pips", c.Inputs.StopLossPips)},
	}
	if c.Inputs.TakeProfitPips > 0 {
		out = append(out, Line{"Take Profit", fmt.Sprintf("%g pips", c.Inputs.TakeProfitPips)})
	}
	out = append(out,
		Line{"Money at Risk", money(c.Sizing.MoneyAtRisk)},
		Line{"Lot Size", fmt.Sprintf("%.4f", c.Sizing.QuantizedLotSize)},
		Line{"Adjusted Lot Size", fmt.Sprintf("%.4f", c.AdjustedLotSize)},
		Line{"Pip Value (per lot)", money(c.Sizing.PipValuePerLot)},
		Line{"Pip Value (position)", money(c.Sizing.PipValueForPosition)},
	)
	if c.Metrics.RiskReward > 0 {
		out = append(out, Line{"Risk/Reward", fmt.Sprintf("%.2f:1", c.Metrics.RiskReward)})
	}
	out = append(out,
		Line{"Position Value", money(c.Metrics.PositionValue)},
		Line{"Margin Required", money(c.Metrics.MarginRequired)},
		Line{"Free Margin", money(c.Metrics.FreeMargin)},
		Line{"Daily Loss Limit", money(c.Metrics.DailyLossLimit)},
		Line{"Weekly Loss Limit", money(c.Metrics.WeeklyLossLimit)},
		Line{"Risk Score", fmt.Sprintf("%d/%d", c.Assessment.Score, risk.MaxScore)},
		Line{"Risk Level", string(c.Assessment.Level)},
	)
	return out
}

// Text joins Lines as "Label: value" rows separated by newlines.
func Text(c risk.Calculation, currency string) string {
	lines := Lines(c, currency)
	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, l.Label+": "+l.Value)
	}
	return strings.Join(rows, "\n")
}

// CopyLine is the short one-line summary offered for the clipboard.
func CopyLine(c risk.Calculation, currency string) string {
	return fmt.Sprintf("Lot: %.4f, Risk: %.2f %s, Pip Value: %.2f %s",
		c.Sizing.QuantizedLotSize,
		c.Sizing.MoneyAtRisk, currency,
		c.Sizing.PipValueForPosition, currency)
}

// Insights renders the advice as a bulleted list.
func Insights(a risk.Assessment) string {
	var b strings.Builder
	for i, ins := range a.Insights {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(ins.Message)
	}
	return b.String()
}
