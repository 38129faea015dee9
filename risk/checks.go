package risk

import (
	"fmt"
)

// Violation is one failed policy check, identified by Code.
type Violation struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// Decision is advisory. A calculation is always produced; Allowed only
// reports whether it fits the Policy.
type Decision struct {
	Allowed    bool        `json:"allowed"`
	Violations []Violation `json:"violations,omitempty"`
}

func (d *Decision) add(code, msg string) {
	d.Violations = append(d.Violations, Violation{Code: code, Msg: msg})
	d.Allowed = false
}

// Evaluate checks c against p. Zero limits in p are not enforced.
func Evaluate(p Policy, c Calculation) Decision {
	d := Decision{Allowed: true}
	in := c.Inputs.sanitized()

	if in.StopLossPips <= 0 {
		d.add("NO_STOP", "stop loss must be set")
	}
	if c.Sizing.QuantizedLotSize <= 0 {
		d.add("ZERO_LOTS",
			fmt.Sprintf("risk budget %.2f is below one lot step of %g", c.Sizing.MoneyAtRisk, c.Sizing.LotStep))
	}

	if p.MaxRiskPercent > 0 && in.RiskPercent > p.MaxRiskPercent {
		d.add("RISK_TOO_HIGH",
			fmt.Sprintf("planned risk %.2f%% exceeds max %.2f%%", in.RiskPercent, p.MaxRiskPercent))
	}

	// RR is only checked once a target is given
	if p.MinRR > 0 && in.TakeProfitPips > 0 && c.Metrics.RiskReward < p.MinRR {
		d.add("RR_TOO_LOW",
			fmt.Sprintf("RR %.2f below minimum %.2f", c.Metrics.RiskReward, p.MinRR))
	}

	if p.MaxMarginPercent > 0 && in.Balance > 0 {
		used := 100 * c.Metrics.MarginRequired / in.Balance
		if used > p.MaxMarginPercent {
			d.add("MARGIN_TOO_HIGH",
				fmt.Sprintf("margin required %.2f%% exceeds max %.2f%%", used, p.MaxMarginPercent))
		}
	}

	return d
}
