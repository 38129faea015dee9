package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatScenarioOrg renders a Scenario as an Org-mode block suitable for
// pasting into a trading journal. Structured figures go in the PROPERTIES
// drawer, insights become a list.
func FormatScenarioOrg(s Scenario) string {
	c := s.Calculation

	var b strings.Builder
	fmt.Fprintf(&b, "** Scenario: %s (%s)\n", c.Inputs.Pair, shortID(s.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", s.ID)
	fmt.Fprintf(&b, ":TIME: %s\n", s.Time.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":PAIR: %s\n", c.Inputs.Pair)
	fmt.Fprintf(&b, ":BALANCE: %.2f\n", c.Inputs.Balance)
	fmt.Fprintf(&b, ":RISK_PERCENT: %.2f\n", c.Inputs.RiskPercent)
	fmt.Fprintf(&b, ":STOP_LOSS_PIPS: %.1f\n", c.Inputs.StopLossPips)
	if c.Inputs.TakeProfitPips > 0 {
		fmt.Fprintf(&b, ":TAKE_PROFIT_PIPS: %.1f\n", c.Inputs.TakeProfitPips)
	}
	fmt.Fprintf(&b, ":MONEY_AT_RISK: %.2f\n", c.Sizing.MoneyAtRisk)
	fmt.Fprintf(&b, ":LOT_SIZE: %.4f\n", c.Sizing.QuantizedLotSize)
	fmt.Fprintf(&b, ":ADJUSTED_LOT_SIZE: %.4f\n", c.AdjustedLotSize)
	fmt.Fprintf(&b, ":PIP_VALUE: %.2f\n", c.Sizing.PipValueForPosition)
	fmt.Fprintf(&b, ":RISK_SCORE: %d\n", c.Assessment.Score)
	fmt.Fprintf(&b, ":RISK_LEVEL: %s\n", c.Assessment.Level)
	b.WriteString(":END:\n")

	if s.Note != "" {
		b.WriteString("\n")
		b.WriteString(s.Note)
		b.WriteString("\n")
	}

	b.WriteString("\n*** Insights\n")
	for _, ins := range c.Assessment.Insights {
		fmt.Fprintf(&b, "- %s\n", ins.Message)
	}

	return b.String()
}

// FormatScenariosOrg renders multiple scenarios separated by blank lines.
func FormatScenariosOrg(list []Scenario) string {
	var b strings.Builder
	for i, s := range list {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatScenarioOrg(s))
	}
	return b.String()
}

// shortID keeps the random tail of a ULID; the head is the timestamp.
func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[len(full)-8:]
}
