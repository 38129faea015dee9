package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(ins []Insight) []InsightKind {
	out := make([]InsightKind, 0, len(ins))
	for _, i := range ins {
		out = append(out, i.Kind)
	}
	return out
}

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Inputs
		want int
	}{
		{
			// 4 + 3 + 2 + 2 = 11, capped
			name: "scenario D caps at ten",
			in:   Inputs{RiskPercent: 6, Balance: 800, Pair: "GBPUSD", StopLossPips: 50},
			want: 10,
		},
		{
			// vol 95 +1, stop 30 < 47.5 +2
			name: "scenario A",
			in:   scenarioA(),
			want: 3,
		},
		{
			name: "quiet pair wide stop",
			in:   Inputs{RiskPercent: 1, Balance: 50000, Pair: "USDJPY", StopLossPips: 100},
			want: 0,
		},
		{
			// 2 + 2 + 0 (default vol 100 is not > 100) + 1 (60 < 80)
			name: "unknown pair",
			in:   Inputs{RiskPercent: 4, Balance: 3000, Pair: "XAUUSD", StopLossPips: 60},
			want: 5,
		},
		{
			// risk 1.5 +1, balance 7000 +1, vol 100 +0, stop 70 < 80 +1
			name: "usdcad middle bands",
			in:   Inputs{RiskPercent: 1.5, Balance: 7000, Pair: "USDCAD", StopLossPips: 70},
			want: 3,
		},
		{
			// everything coerced to zero: balance +3, eurusd +1, stop 0 +2
			name: "negative inputs",
			in:   Inputs{RiskPercent: -3, Balance: -100, Pair: "EURUSD", StopLossPips: -20},
			want: 6,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Score(tt.in))
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	t.Parallel()

	values := []float64{-1000, -1, 0, 0.4, 1, 2, 4, 6, 50, 999, 4999, 9999, 10000, 1e9}
	pairs := []string{"", "EURUSD", "GBPUSD", "EURGBP", "XAUUSD"}

	for _, v := range values {
		for _, p := range pairs {
			s := Score(Inputs{RiskPercent: v, Balance: v, StopLossPips: v, Pair: p})
			assert.GreaterOrEqual(t, s, 0)
			assert.LessOrEqual(t, s, MaxScore)
		}
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LevelLow, Classify(0))
	assert.Equal(t, LevelLow, Classify(4))
	assert.Equal(t, LevelMedium, Classify(5))
	assert.Equal(t, LevelMedium, Classify(7))
	assert.Equal(t, LevelHigh, Classify(8))
	assert.Equal(t, LevelHigh, Classify(10))
}

func TestLevelBand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text-rose-500", LevelHigh.Band().Color)
	assert.Equal(t, "bg-amber-500/10", LevelMedium.Band().Background)
	assert.Equal(t, "text-emerald-500", LevelLow.Band().Color)
}

func TestInsights_Order(t *testing.T) {
	t.Parallel()

	in := Inputs{RiskPercent: 0.3, Balance: 500, Pair: "EURUSD", StopLossPips: 40}

	got := Insights(in, 0.5)
	assert.Equal(t, []InsightKind{InsightOversized, InsightTightStop, InsightConservative}, kinds(got))

	// small lots leave the oversized rule out, order of the rest is kept
	got = Insights(in, 0.05)
	assert.Equal(t, []InsightKind{InsightTightStop, InsightConservative}, kinds(got))
}

func TestInsights_AllRules(t *testing.T) {
	t.Parallel()

	in := Inputs{RiskPercent: 0.4, Balance: 200, Pair: "GBPUSD", StopLossPips: 10}
	require.GreaterOrEqual(t, Score(in), 7)

	got := Insights(in, 1)
	assert.Equal(t, []InsightKind{
		InsightReduceRisk,
		InsightOversized,
		InsightTightStop,
		InsightConservative,
	}, kinds(got))
}

func TestInsights_Balanced(t *testing.T) {
	t.Parallel()

	in := Inputs{RiskPercent: 1, Balance: 20000, Pair: "EURUSD", StopLossPips: 80}

	got := Insights(in, 0.25)
	require.Len(t, got, 1)
	assert.Equal(t, InsightBalanced, got[0].Kind)
	assert.Equal(t, "Your risk parameters look well balanced!", got[0].Message)
}

func TestInsights_MessagesMatchKind(t *testing.T) {
	t.Parallel()

	in := Inputs{RiskPercent: 0.4, Balance: 200, Pair: "GBPUSD", StopLossPips: 10}
	for _, ins := range Insights(in, 1) {
		assert.NotEmpty(t, ins.Message)
		assert.Equal(t, insightText[ins.Kind], ins.Message)
	}
}

func TestAssess_ScenarioD(t *testing.T) {
	t.Parallel()

	got := Assess(Inputs{RiskPercent: 6, Balance: 800, Pair: "GBPUSD", StopLossPips: 50})

	assert.Equal(t, 10, got.Score)
	assert.Equal(t, LevelHigh, got.Level)
	assert.Equal(t, LevelHigh.Band(), got.Band)
	// adjusted lots are 0.096 * 100/110, below the 0.1 oversized threshold
	assert.Equal(t, []InsightKind{InsightReduceRisk, InsightTightStop}, kinds(got.Insights))
}

func TestAssess_ScenarioA(t *testing.T) {
	t.Parallel()

	got := Assess(scenarioA())

	assert.Equal(t, 3, got.Score)
	assert.Equal(t, LevelLow, got.Level)
	assert.Equal(t, []InsightKind{InsightTightStop}, kinds(got.Insights))
}
