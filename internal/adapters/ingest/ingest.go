// Package ingest parses uploaded tabular files into the boundary Table.
// It guarantees the row sequence reflects original file order; all cell
// interpretation is left to the validator.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/okian/hoopstat/internal/domain/model"
)

// File dispatches on the upload's file extension.
func File(filename string, r io.Reader) (model.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return CSV(r)
	case ".xlsx", ".xls":
		return Excel(r)
	default:
		return model.Table{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// CSV reads a comma-separated file. The first row is the header; every
// later row becomes one RawRecord in file order.
func CSV(r io.Reader) (model.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows become missing cells

	header, err := cr.Read()
	if err == io.EOF {
		return model.Table{}, ErrEmptyFile
	}
	if err != nil {
		return model.Table{}, fmt.Errorf("read csv header: %w", err)
	}

	t := model.Table{Columns: trimAll(header)}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Table{}, fmt.Errorf("read csv row: %w", err)
		}
		t.Rows = append(t.Rows, toRecord(t.Columns, row))
	}
	return t, nil
}

// toRecord maps one raw row onto the header. Cells beyond the row's
// length, and blank cells, are recorded as missing.
func toRecord(columns []string, row []string) model.RawRecord {
	rec := make(model.RawRecord, len(columns))
	for i, col := range columns {
		if i >= len(row) || strings.TrimSpace(row[i]) == "" {
			rec[col] = model.MissingCell()
			continue
		}
		rec[col] = model.TextCell(row[i])
	}
	return rec
}

func trimAll(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
