package garden

import (
	"io"

	"github.com/julianstephens/petgarden/internal/constants"
	"github.com/julianstephens/petgarden/internal/models"
)

// Records returns up to limit records, newest first. limit <= 0 means all.
func (g *Garden) Records(limit int) ([]models.GrowthRecord, error) {
	if err := g.requireActive(); err != nil {
		return nil, err
	}
	return g.ledger.Log().Recent(limit), nil
}

// ClearRecords empties the growth log and nothing else.
func (g *Garden) ClearRecords() (int, error) {
	if err := g.requireActive(); err != nil {
		return 0, err
	}
	n := g.ledger.Log().Len()
	g.ledger.Log().Clear()
	return n, g.persist(constants.KeyRecords)
}

// ExportRecords writes the log as CSV. An empty log writes nothing and
// returns ErrNothingToExport.
func (g *Garden) ExportRecords(w io.Writer) (int, error) {
	if err := g.requireActive(); err != nil {
		return 0, err
	}
	return g.ledger.Log().ExportCSV(w)
}

// RecordCount is available without activation for diagnostics.
func (g *Garden) RecordCount() int {
	return g.ledger.Log().Len()
}
