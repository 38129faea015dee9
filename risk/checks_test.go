package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func codes(d Decision) []string {
	var out []string
	for _, v := range d.Violations {
		out = append(out, v.Code)
	}
	return out
}

func TestEvaluate_Allowed(t *testing.T) {
	t.Parallel()

	in := scenarioA()
	in.TakeProfitPips = 60

	d := Evaluate(DefaultPolicy(), Calculate(in, 0.01))
	assert.True(t, d.Allowed)
	assert.Empty(t, d.Violations)
}

func TestEvaluate_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Inputs
		want []string
	}{
		{
			name: "no stop",
			in:   Inputs{Balance: 10000, RiskPercent: 1, Pair: "EURUSD"},
			want: []string{"NO_STOP", "ZERO_LOTS"},
		},
		{
			name: "risk too high",
			in:   Inputs{Balance: 10000, RiskPercent: 3, StopLossPips: 30, Pair: "EURUSD"},
			want: []string{"RISK_TOO_HIGH"},
		},
		{
			name: "rr too low",
			in:   Inputs{Balance: 10000, RiskPercent: 1, StopLossPips: 30, TakeProfitPips: 30, Pair: "EURUSD"},
			want: []string{"RR_TOO_LOW"},
		},
		{
			// 2 lots = 200000 notional, 2000 margin on a 5000 balance
			name: "margin too high",
			in:   Inputs{Balance: 5000, RiskPercent: 2, StopLossPips: 5, Pair: "EURUSD"},
			want: []string{"MARGIN_TOO_HIGH"},
		},
		{
			name: "budget below one step",
			in:   Inputs{Balance: 100, RiskPercent: 1, StopLossPips: 30, Pair: "EURUSD"},
			want: []string{"ZERO_LOTS"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := Evaluate(DefaultPolicy(), Calculate(tt.in, 0.01))
			assert.False(t, d.Allowed)
			assert.Equal(t, tt.want, codes(d))
		})
	}
}

func TestEvaluate_ZeroPolicyOnlyChecksStops(t *testing.T) {
	t.Parallel()

	in := Inputs{Balance: 5000, RiskPercent: 10, StopLossPips: 5, TakeProfitPips: 1, Pair: "EURUSD"}
	d := Evaluate(Policy{}, Calculate(in, 0.01))
	assert.True(t, d.Allowed)
}
