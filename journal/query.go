package journal

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/lotsize/risk"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (Scenario, error) {
	var (
		s        Scenario
		tier     string
		level    string
		insights string
	)
	c := &s.Calculation

	err := row.Scan(
		&s.ID, &s.Time, &s.Note,
		&c.Inputs.Pair, &c.Inputs.Balance, &c.Inputs.RiskPercent, &c.Inputs.StopLossPips,
		&c.Inputs.TakeProfitPips, &c.Inputs.CustomPipValue, &c.Inputs.LotStep, &tier,
		&c.Sizing.MoneyAtRisk, &c.Sizing.PipValuePerLot, &c.Sizing.RawLotSize, &c.Sizing.QuantizedLotSize,
		&c.Sizing.PipValueForPosition, &c.Sizing.LotStep, &c.AdjustedLotSize,
		&c.Metrics.RiskReward, &c.Metrics.PositionValue, &c.Metrics.MarginRequired, &c.Metrics.FreeMargin,
		&c.Metrics.DailyLossLimit, &c.Metrics.WeeklyLossLimit,
		&c.Assessment.Score, &level, &insights,
	)
	if err != nil {
		return Scenario{}, err
	}

	c.Inputs.Tier = risk.AccountTier(tier)
	c.Assessment.Level = risk.Level(level)
	c.Assessment.Band = c.Assessment.Level.Band()
	if err := json.Unmarshal([]byte(insights), &c.Assessment.Insights); err != nil {
		return Scenario{}, fmt.Errorf("decode insights for %s: %w", s.ID, err)
	}
	return s, nil
}

// GetScenario returns a single scenario by ID.
func (j *SQLite) GetScenario(scenarioID string) (Scenario, error) {
	row := j.db.QueryRow(`SELECT `+scenarioColumns+` FROM scenarios WHERE id = ?`, scenarioID)

	s, err := scanScenario(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Scenario{}, fmt.Errorf("%w: %q", ErrNotFound, scenarioID)
		}
		return Scenario{}, err
	}
	return s, nil
}

// ListScenarios returns the most recent scenarios first. A limit <= 0
// returns all of them.
func (j *SQLite) ListScenarios(limit int) ([]Scenario, error) {
	if limit <= 0 {
		limit = -1
	}
	return j.list(`SELECT `+scenarioColumns+` FROM scenarios ORDER BY id DESC LIMIT ?`, limit)
}

// ListScenariosBetween returns scenarios taken within [start, end), oldest first.
func (j *SQLite) ListScenariosBetween(start, end time.Time) ([]Scenario, error) {
	return j.list(`
		SELECT `+scenarioColumns+`
		FROM scenarios
		WHERE time >= ? AND time < ?
		ORDER BY time ASC`, start.UTC(), end.UTC())
}

func (j *SQLite) list(query string, args ...any) ([]Scenario, error) {
	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Scenario
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
