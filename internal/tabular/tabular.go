// Package tabular serializes record collections to CSV with an explicit,
// ordered column list.
//
// The writer carries no business logic: a record contributes a Row keyed by
// column name, columns it does not provide are written as empty text, and
// records are emitted in collection order after a single header line.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrOutput marks a destination that cannot be created or written.
var ErrOutput = errors.New("output failure")

// Row is a record keyed by column name.
type Row map[string]string

// Rower is implemented by every exportable record type.
type Rower interface {
	Row() Row
}

// Write writes the header followed by one line per record.
func Write[T Rower](w io.Writer, columns []string, records []T) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	line := make([]string, len(columns))
	for i, rec := range records {
		row := rec.Row()
		for j, col := range columns {
			line[j] = row[col]
		}
		if err := cw.Write(line); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// WriteFile writes records to path, replacing any existing file. Every
// failure is wrapped with ErrOutput.
func WriteFile[T Rower](path string, columns []string, records []T) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrOutput, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrOutput, path, cerr)
		}
	}()

	if err := Write(f, columns, records); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutput, filepath.Base(path), err)
	}
	return nil
}

// Read parses a table written by Write. The header must match columns
// exactly; rows come back keyed by column name.
func Read(r io.Reader, columns []string) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(columns)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("read header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, col := range columns {
		if header[i] != col {
			return nil, fmt.Errorf("header column %d is %q, expected %q", i, header[i], col)
		}
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
