package risk

import (
	"strings"

	"github.com/rustyeddy/lotsize/pkg/num"
)

// AccountTier scales the adjusted lot size to the size of the account.
type AccountTier string

const (
	TierMicro        AccountTier = "micro"
	TierSmall        AccountTier = "small"
	TierStandard     AccountTier = "standard"
	TierProfessional AccountTier = "professional"
)

// ParseTier maps free text onto a tier. Unknown text is TierStandard.
func ParseTier(s string) AccountTier {
	switch t := AccountTier(strings.ToLower(strings.TrimSpace(s))); t {
	case TierMicro, TierSmall, TierStandard, TierProfessional:
		return t
	default:
		return TierStandard
	}
}

// Multiplier is the lot size scaling applied by AdjustedLotSize.
func (t AccountTier) Multiplier() float64 {
	switch t {
	case TierMicro:
		return 0.5
	case TierSmall:
		return 0.8
	case TierProfessional:
		return 1.2
	default:
		return 1.0
	}
}

// DefaultLotStep is the broker lot increment used when none is given.
const DefaultLotStep = 0.01

// Inputs are the trading parameters of one calculation. Percentages are
// in percent (1 means 1%). Zero TakeProfitPips and CustomPipValue mean
// "not set".
type Inputs struct {
	Balance        float64     `json:"balance" yaml:"balance"`
	RiskPercent    float64     `json:"risk_percent" yaml:"risk_percent"`
	StopLossPips   float64     `json:"stop_loss_pips" yaml:"stop_loss_pips"`
	TakeProfitPips float64     `json:"take_profit_pips,omitempty" yaml:"take_profit_pips,omitempty"`
	Pair           string      `json:"pair" yaml:"pair"`
	CustomPipValue float64     `json:"custom_pip_value,omitempty" yaml:"custom_pip_value,omitempty"`
	LotStep        float64     `json:"lot_step" yaml:"lot_step"`
	Tier           AccountTier `json:"account_tier" yaml:"account_tier"`
}

// sanitized returns a copy with negative and non-finite numbers set to 0.
func (in Inputs) sanitized() Inputs {
	in.Balance = num.NonNegative(in.Balance)
	in.RiskPercent = num.NonNegative(in.RiskPercent)
	in.StopLossPips = num.NonNegative(in.StopLossPips)
	in.TakeProfitPips = num.NonNegative(in.TakeProfitPips)
	in.CustomPipValue = num.NonNegative(in.CustomPipValue)
	in.LotStep = num.NonNegative(in.LotStep)
	return in
}

// Policy holds the advisory limits checked by Evaluate. Percentages are in
// percent, like Inputs.
type Policy struct {
	MaxRiskPercent   float64 `json:"max_risk_percent" yaml:"max_risk_percent" mapstructure:"max_risk_percent"`
	MinRR            float64 `json:"min_rr" yaml:"min_rr" mapstructure:"min_rr"`
	MaxMarginPercent float64 `json:"max_margin_percent" yaml:"max_margin_percent" mapstructure:"max_margin_percent"`
}

// DefaultPolicy mirrors the common 2% per trade rule.
func DefaultPolicy() Policy {
	return Policy{
		MaxRiskPercent:   2,
		MinRR:            1.5,
		MaxMarginPercent: 20,
	}
}
