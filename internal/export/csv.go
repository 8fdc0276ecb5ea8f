package export

import (
	"encoding/csv"
	"io"
)

// WriteCSV serializes rows to w as a CSV document with one header line.
// Empty input writes nothing. All rows are assumed to share the first
// row's header set.
func WriteCSV(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(rows[0].Headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.Values); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
