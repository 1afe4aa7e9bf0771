// Package export serializes ledger data for external consumption:
// CSV files and the labeled series consumed by the chart renderer.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"tally/internal/core"
)

// CSVHeader is the fixed column order of every export.
var CSVHeader = []string{"id", "date", "category", "amount", "notes"}

// WriteCSV writes records as CSV in the order given; callers pass the
// display-ordered sequence. Absent notes become an empty field.
func WriteCSV(w io.Writer, records []core.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.Date.String(),
			r.Category,
			strconv.FormatFloat(r.Amount, 'g', -1, 64),
			r.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ExportCSV writes records to a file at path, creating or truncating it.
func ExportCSV(path string, records []core.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	return nil
}
