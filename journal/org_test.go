package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatScenarioOrg(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	s := testScenario(t, at, "EURUSD")
	s.ID = "01HS0000000000000000ABCDEF"

	result := FormatScenarioOrg(s)

	assert.Contains(t, result, "** Scenario: EURUSD (00ABCDEF)")
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":ID: 01HS0000000000000000ABCDEF")
	assert.Contains(t, result, ":TIME: 2024-03-15T10:30:45Z")
	assert.Contains(t, result, ":BALANCE: 10000.00")
	assert.Contains(t, result, ":TAKE_PROFIT_PIPS: 60.0")
	assert.Contains(t, result, ":LOT_SIZE: 0.3300")
	assert.Contains(t, result, ":RISK_LEVEL: LOW")
	assert.Contains(t, result, ":END:")
	assert.Contains(t, result, "breakout retest")
	assert.Contains(t, result, "*** Insights\n- Stop loss may be too tight")
}

func TestFormatScenarioOrgShortID(t *testing.T) {
	t.Parallel()

	s := testScenario(t, time.Now(), "GBPUSD")
	s.ID = "short"
	s.Note = ""
	s.Calculation.Inputs.TakeProfitPips = 0

	result := FormatScenarioOrg(s)
	assert.Contains(t, result, "** Scenario: GBPUSD (short)")
	assert.NotContains(t, result, "TAKE_PROFIT_PIPS")
}

func TestFormatScenariosOrg(t *testing.T) {
	t.Parallel()

	a := testScenario(t, time.Now(), "EURUSD")
	b := testScenario(t, time.Now(), "USDJPY")

	out := FormatScenariosOrg([]Scenario{a, b})
	assert.Equal(t, 2, strings.Count(out, "** Scenario:"))
	assert.Empty(t, FormatScenariosOrg(nil))
}
