// market/instruments.go
package market

import (
	"math"
	"sort"
	"strings"
)

const (
	// DefaultPipValue is the pip value per standard lot used for pairs
	// missing from the table.
	DefaultPipValue = 10.0

	// DefaultVolatility is the current volatility (pips) assumed for pairs
	// missing from the table.
	DefaultVolatility = 100.0

	// DefaultMarginRate is the fraction of notional held as margin.
	DefaultMarginRate = 0.01

	// StandardLot is the notional size of one standard lot in base units.
	StandardLot = 100000.0
)

// Volatility is a typical daily range reference in pips.
type Volatility struct {
	Low     float64 `json:"low" yaml:"low"`
	High    float64 `json:"high" yaml:"high"`
	Current float64 `json:"current" yaml:"current"`
}

// PairMeta is the reference data for one currency pair.
type PairMeta struct {
	Name       string     `json:"name" yaml:"name"`
	PipValue   float64    `json:"pip_value" yaml:"pip_value"`
	Volatility Volatility `json:"volatility" yaml:"volatility"`
	MarginRate float64    `json:"margin_rate" yaml:"margin_rate"`
}

// Pairs is read-only reference data, keyed by normalized symbol.
var Pairs = map[string]PairMeta{
	"EURUSD": {
		Name:       "EURUSD",
		PipValue:   10,
		Volatility: Volatility{Low: 70, High: 120, Current: 95},
		MarginRate: DefaultMarginRate,
	},
	"GBPUSD": {
		Name:       "GBPUSD",
		PipValue:   10,
		Volatility: Volatility{Low: 80, High: 150, Current: 110},
		MarginRate: DefaultMarginRate,
	},
	"USDJPY": {
		Name:       "USDJPY",
		PipValue:   9.13,
		Volatility: Volatility{Low: 50, High: 100, Current: 75},
		MarginRate: DefaultMarginRate,
	},
	"USDCHF": {
		Name:       "USDCHF",
		PipValue:   10,
		Volatility: Volatility{Low: 60, High: 110, Current: 85},
		MarginRate: DefaultMarginRate,
	},
	"AUDUSD": {
		Name:       "AUDUSD",
		PipValue:   10,
		Volatility: Volatility{Low: 65, High: 120, Current: 90},
		MarginRate: DefaultMarginRate,
	},
	"USDCAD": {
		Name:       "USDCAD",
		PipValue:   10,
		Volatility: Volatility{Low: 70, High: 130, Current: 100},
		MarginRate: DefaultMarginRate,
	},
	"NZDUSD": {
		Name:       "NZDUSD",
		PipValue:   10,
		Volatility: Volatility{Low: 60, High: 115, Current: 88},
		MarginRate: DefaultMarginRate,
	},
	"EURGBP": {
		Name:       "EURGBP",
		PipValue:   8.6,
		Volatility: Volatility{Low: 45, High: 90, Current: 68},
		MarginRate: DefaultMarginRate,
	},
}

var symbolSeparators = strings.NewReplacer("_", "", "/", "", "-", "", " ", "")

// Normalize maps "eur_usd", "EUR/USD" and "EURUSD" to "EURUSD".
func Normalize(pair string) string {
	return strings.ToUpper(symbolSeparators.Replace(strings.TrimSpace(pair)))
}

// Lookup returns the metadata for pair, ignoring case and separators.
func Lookup(pair string) (PairMeta, bool) {
	meta, ok := Pairs[Normalize(pair)]
	return meta, ok
}

// ResolvePipValue returns the pip value of one standard lot of pair.
// A positive custom value always wins; unknown pairs fall back to
// DefaultPipValue. It never fails.
func ResolvePipValue(pair string, custom float64) float64 {
	if custom > 0 && !math.IsInf(custom, 0) {
		return custom
	}
	if meta, ok := Lookup(pair); ok && meta.PipValue > 0 {
		return meta.PipValue
	}
	return DefaultPipValue
}

// CurrentVolatility returns the current volatility reference for pair in pips.
func CurrentVolatility(pair string) float64 {
	if meta, ok := Lookup(pair); ok && meta.Volatility.Current > 0 {
		return meta.Volatility.Current
	}
	return DefaultVolatility
}

// Symbols lists the known pairs in alphabetical order.
func Symbols() []string {
	out := make([]string, 0, len(Pairs))
	for k := range Pairs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
