package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var csvHeader = []string{
	"id", "time", "note", "pair", "balance", "risk_percent", "stop_loss_pips", "take_profit_pips",
	"lot_step", "account_tier", "money_at_risk", "pip_value_per_lot", "raw_lot_size",
	"quantized_lot_size", "adjusted_lot_size", "pip_value_for_position", "risk_reward",
	"margin_required", "free_margin", "score", "level", "insights",
}

// CSV appends scenarios to a single file, writing the header once.
type CSV struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSV, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			_ = f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return &CSV{w: w, f: f}, nil
}

func (j *CSV) RecordScenario(s Scenario) error {
	c := s.Calculation
	msgs := make([]string, 0, len(c.Assessment.Insights))
	for _, ins := range c.Assessment.Insights {
		msgs = append(msgs, string(ins.Kind))
	}

	err := j.w.Write([]string{
		s.ID,
		s.Time.UTC().Format(time.RFC3339),
		s.Note,
		c.Inputs.Pair,
		f(c.Inputs.Balance),
		f(c.Inputs.RiskPercent),
		f(c.Inputs.StopLossPips),
		f(c.Inputs.TakeProfitPips),
		f(c.Sizing.LotStep),
		string(c.Inputs.Tier),
		f(c.Sizing.MoneyAtRisk),
		f(c.Sizing.PipValuePerLot),
		f(c.Sizing.RawLotSize),
		f(c.Sizing.QuantizedLotSize),
		f(c.AdjustedLotSize),
		f(c.Sizing.PipValueForPosition),
		f(c.Metrics.RiskReward),
		f(c.Metrics.MarginRequired),
		f(c.Metrics.FreeMargin),
		strconv.Itoa(c.Assessment.Score),
		string(c.Assessment.Level),
		strings.Join(msgs, ";"),
	})
	if err != nil {
		return fmt.Errorf("write scenario %s: %w", s.ID, err)
	}

	j.w.Flush()
	return j.w.Error()
}

func (j *CSV) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		_ = j.f.Close()
		return err
	}
	return j.f.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
