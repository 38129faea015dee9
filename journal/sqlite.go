package journal

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is a Journal that can also read scenarios back.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordScenario(s Scenario) error {
	insights, err := json.Marshal(s.Calculation.Assessment.Insights)
	if err != nil {
		return fmt.Errorf("encode insights: %w", err)
	}

	in := s.Calculation.Inputs
	sz := s.Calculation.Sizing
	m := s.Calculation.Metrics
	a := s.Calculation.Assessment

	_, err = j.db.Exec(`
		INSERT INTO scenarios (`+scenarioColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Time, s.Note,
		in.Pair, in.Balance, in.RiskPercent, in.StopLossPips, in.TakeProfitPips, in.CustomPipValue, in.LotStep, string(in.Tier),
		sz.MoneyAtRisk, sz.PipValuePerLot, sz.RawLotSize, sz.QuantizedLotSize, sz.PipValueForPosition, sz.LotStep, s.Calculation.AdjustedLotSize,
		m.RiskReward, m.PositionValue, m.MarginRequired, m.FreeMargin, m.DailyLossLimit, m.WeeklyLossLimit,
		a.Score, string(a.Level), string(insights),
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
