// Package ledger applies point awards, adoptions and shop redemptions.
//
// Every operation computes its result on copies and then commits the new
// state together with its growth records. A failed operation leaves the
// roster, the catalog and the log untouched.
package ledger

import (
	"github.com/julianstephens/petgarden/internal/catalog"
	"github.com/julianstephens/petgarden/internal/ids"
	"github.com/julianstephens/petgarden/internal/records"
)

type Ledger struct {
	roster  *Roster
	catalog *catalog.Catalog
	log     *records.Log
	ids     ids.Source
}

// New wires a ledger over the given stores.
func New(roster *Roster, cat *catalog.Catalog, log *records.Log, src ids.Source) *Ledger {
	if src == nil {
		src = ids.New()
	}
	return &Ledger{roster: roster, catalog: cat, log: log, ids: src}
}

func (l *Ledger) Roster() *Roster {
	return l.roster
}

func (l *Ledger) Catalog() *catalog.Catalog {
	return l.catalog
}

func (l *Ledger) Log() *records.Log {
	return l.log
}
