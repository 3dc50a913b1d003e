package records

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/julianstephens/petgarden/internal/constants"
	errs "github.com/julianstephens/petgarden/internal/errors"
)

// utf8BOM makes spreadsheet apps detect the encoding of non-ASCII names.
const utf8BOM = "\ufeff"

var csvHeader = []string{"timestamp", "student", "type", "description", "value_change"}

// ExportCSV writes the log newest first. An empty log writes nothing and
// returns ErrNothingToExport.
func (l *Log) ExportCSV(w io.Writer) (int, error) {
	recs := l.Records()
	if len(recs) == 0 {
		return 0, errs.ErrNothingToExport
	}

	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return 0, fmt.Errorf("failed to write csv: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range recs {
		row := []string{
			r.Timestamp.Local().Format(constants.ExportTimeFormat),
			r.StudentName,
			string(r.Type),
			r.Description,
			r.ValueChange,
		}
		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush csv: %w", err)
	}
	return len(recs), nil
}
