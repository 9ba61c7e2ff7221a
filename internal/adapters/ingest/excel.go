package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/okian/hoopstat/internal/domain/model"
)

// Excel reads the first sheet of an XLSX workbook. The first row is the
// header, as in the CSV path. Cell values arrive as display strings;
// numeric interpretation stays with the validator.
func Excel(r io.Reader) (model.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return model.Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return model.Table{}, ErrEmptyFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return model.Table{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return model.Table{}, ErrEmptyFile
	}

	t := model.Table{Columns: trimAll(rows[0])}
	for _, row := range rows[1:] {
		t.Rows = append(t.Rows, toRecord(t.Columns, row))
	}
	return t, nil
}
