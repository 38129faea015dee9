package report

import (
	"strings"
	"testing"

	"github.com/rustyeddy/lotsize/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioA() risk.Calculation {
	return risk.Calculate(risk.Inputs{
		Balance:      10000,
		RiskPercent:  1,
		StopLossPips: 30,
		Pair:         "EURUSD",
		LotStep:      0.01,
	}, 0.01)
}

func TestCopyLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Lot: 0.3300, Risk: 100.00 USD, Pip Value: 3.30 USD", CopyLine(scenarioA(), "USD"))
}

func TestText(t *testing.T) {
	t.Parallel()

	out := Text(scenarioA(), "USD")
	rows := strings.Split(out, "\n")

	for _, r := range rows {
		parts := strings.SplitN(r, ": ", 2)
		require.Len(t, parts, 2, r)
		assert.NotEmpty(t, parts[0])
	}

	assert.Equal(t, "Pair: EURUSD", rows[0])
	assert.Contains(t, out, "Money at Risk: 100.00 USD")
	assert.Contains(t, out, "Lot Size: 0.3300")
	assert.Contains(t, out, "Pip Value (per lot): 10.00 USD")
	assert.Contains(t, out, "Risk Score: 3/10")
	assert.Contains(t, out, "Risk Level: LOW")
	assert.NotContains(t, out, "Take Profit")
	assert.NotContains(t, out, "Risk/Reward")
}

func TestTextWithTarget(t *testing.T) {
	t.Parallel()

	c := scenarioA()
	c.Inputs.TakeProfitPips = 60
	c.Metrics.RiskReward = 2

	out := Text(c, "EUR")
	assert.Contains(t, out, "Take Profit: 60 pips")
	assert.Contains(t, out, "Risk/Reward: 2.00:1")
	assert.Contains(t, out, "Balance: 10000.00 EUR")
}

func TestInsights(t *testing.T) {
	t.Parallel()

	a := risk.Assessment{Insights: []risk.Insight{
		{Kind: risk.InsightTightStop, Message: "one"},
		{Kind: risk.InsightConservative, Message: "two"},
	}}
	assert.Equal(t, "- one\n- two", Insights(a))
}
