package risk

// Calculation is every figure derived from one set of Inputs.
type Calculation struct {
	Inputs          Inputs     `json:"inputs"`
	Sizing          Sizing     `json:"sizing"`
	AdjustedLotSize float64    `json:"adjusted_lot_size"`
	Metrics         Metrics    `json:"metrics"`
	Assessment      Assessment `json:"assessment"`
}

// Calculate runs sizing, the adjusted variant, metrics and the assessment
// on the same inputs.
func Calculate(in Inputs, marginRate float64) Calculation {
	s := Size(in)
	return Calculation{
		Inputs:          in,
		Sizing:          s,
		AdjustedLotSize: AdjustedLotSize(in),
		Metrics:         Measure(in, s, marginRate),
		Assessment:      Assess(in),
	}
}
