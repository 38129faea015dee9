package risk

import (
	"github.com/rustyeddy/lotsize/market"
)

// MaxScore caps Score.
const MaxScore = 10

// Level buckets a risk score into LOW, MEDIUM or HIGH.
type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

// Band is the display tag attached to a Level. Callers render it as-is.
type Band struct {
	Color      string `json:"color"`
	Background string `json:"bg"`
}

// Band returns the display tag for l.
func (l Level) Band() Band {
	switch l {
	case LevelHigh:
		return Band{Color: "text-rose-500", Background: "bg-rose-500/10"}
	case LevelMedium:
		return Band{Color: "text-amber-500", Background: "bg-amber-500/10"}
	default:
		return Band{Color: "text-emerald-500", Background: "bg-emerald-500/10"}
	}
}

// InsightKind tags each piece of advice so callers can match on it.
type InsightKind string

const (
	InsightReduceRisk   InsightKind = "reduce_risk"
	InsightOversized    InsightKind = "oversized"
	InsightTightStop    InsightKind = "tight_stop"
	InsightConservative InsightKind = "conservative"
	InsightBalanced     InsightKind = "balanced"
)

var insightText = map[InsightKind]string{
	InsightReduceRisk:   "Consider reducing risk percentage for better capital preservation",
	InsightOversized:    "High position size relative to account balance - consider micro lots",
	InsightTightStop:    "Stop loss may be too tight for current market volatility",
	InsightConservative: "Very conservative risk level - consider increasing slightly for better returns",
	InsightBalanced:     "Your risk parameters look well balanced!",
}

// Insight is one tagged piece of advice.
type Insight struct {
	Kind    InsightKind `json:"kind"`
	Message string      `json:"message"`
}

func newInsight(k InsightKind) Insight {
	return Insight{Kind: k, Message: insightText[k]}
}

// Assessment is the score, level and advice for one set of Inputs.
type Assessment struct {
	Score    int       `json:"score"`
	Level    Level     `json:"level"`
	Band     Band      `json:"band"`
	Insights []Insight `json:"insights"`
}

// Score rates the inputs from 0 (benign) to MaxScore. Each factor adds
// points independently.
func Score(in Inputs) int {
	in = in.sanitized()
	score := 0

	switch {
	case in.RiskPercent > 5:
		score += 4
	case in.RiskPercent > 3:
		score += 2
	case in.RiskPercent > 1:
		score += 1
	}

	// smaller accounts carry more relative risk
	switch {
	case in.Balance < 1000:
		score += 3
	case in.Balance < 5000:
		score += 2
	case in.Balance < 10000:
		score += 1
	}

	vol := market.CurrentVolatility(in.Pair)
	switch {
	case vol > 100:
		score += 2
	case vol > 80:
		score += 1
	}

	switch {
	case in.StopLossPips < vol*0.5:
		score += 2
	case in.StopLossPips < vol*0.8:
		score += 1
	}

	return min(MaxScore, score)
}

// Classify maps a score to a Level.
func Classify(score int) Level {
	switch {
	case score >= 8:
		return LevelHigh
	case score >= 5:
		return LevelMedium
	default:
		return LevelLow
	}
}

// Insights returns the advice for in, in a fixed order. lots is the lot
// size the trader intends to take. The result is never empty.
func Insights(in Inputs, lots float64) []Insight {
	in = in.sanitized()
	var out []Insight

	if Score(in) >= 7 {
		out = append(out, newInsight(InsightReduceRisk))
	}
	if in.Balance < 1000 && lots > 0.1 {
		out = append(out, newInsight(InsightOversized))
	}
	if in.StopLossPips < market.CurrentVolatility(in.Pair)*0.7 {
		out = append(out, newInsight(InsightTightStop))
	}
	if in.RiskPercent < 0.5 {
		out = append(out, newInsight(InsightConservative))
	}

	if len(out) == 0 {
		out = append(out, newInsight(InsightBalanced))
	}
	return out
}

// Assess scores in and generates insights against the adjusted lot size.
func Assess(in Inputs) Assessment {
	score := Score(in)
	level := Classify(score)
	return Assessment{
		Score:    score,
		Level:    level,
		Band:     level.Band(),
		Insights: Insights(in, AdjustedLotSize(in)),
	}
}
