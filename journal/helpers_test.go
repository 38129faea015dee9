package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rustyeddy/lotsize/risk"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func testScenario(t *testing.T, at time.Time, pair string) Scenario {
	t.Helper()

	c := risk.Calculate(risk.Inputs{
		Balance:        10000,
		RiskPercent:    1,
		StopLossPips:   30,
		TakeProfitPips: 60,
		Pair:           pair,
		LotStep:        0.01,
		Tier:           risk.TierSmall,
	}, 0.01)
	return NewScenario(c, "breakout retest", at)
}
