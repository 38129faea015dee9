package cmd

import (
	"fmt"

	"github.com/rustyeddy/lotsize/config"
	"github.com/rustyeddy/lotsize/journal"
)

// openJournal opens the journal named by c.Journal. It returns nil for
// type "none".
func openJournal(c *config.Config) (journal.Journal, error) {
	switch c.Journal.Type {
	case "", "none":
		return nil, nil
	case "csv":
		j, err := journal.NewCSV(c.Journal.File)
		if err != nil {
			return nil, fmt.Errorf("open csv journal: %w", err)
		}
		return j, nil
	case "sqlite":
		j, err := journal.NewSQLite(c.Journal.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open db: %w", err)
		}
		return j, nil
	default:
		return nil, fmt.Errorf("unknown journal type %q", c.Journal.Type)
	}
}
