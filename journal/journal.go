// journal/journal.go
package journal

import (
	"errors"
	"time"

	"github.com/rustyeddy/lotsize/pkg/id"
	"github.com/rustyeddy/lotsize/risk"
)

var ErrNotFound = errors.New("scenario not found")

// Scenario is a saved calculation: the inputs, every derived figure and
// when it was taken.
type Scenario struct {
	ID          string           `json:"id"`
	Time        time.Time        `json:"time"`
	Note        string           `json:"note,omitempty"`
	Calculation risk.Calculation `json:"calculation"`
}

// NewScenario stamps c with a fresh ID taken at now.
func NewScenario(c risk.Calculation, note string, now time.Time) Scenario {
	return Scenario{
		ID:          id.NewAt(now),
		Time:        now.UTC(),
		Note:        note,
		Calculation: c,
	}
}

// Journal records scenarios. Implementations are SQLite and CSV.
type Journal interface {
	RecordScenario(Scenario) error
	Close() error
}
