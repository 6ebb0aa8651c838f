package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"reels-chart/models"
)

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// Columns names the header cells holding each field.
type Columns struct {
	Type     string
	Label    string
	Sequence string
	Date     string
	Views    string
}

// DefaultColumns matches the header of the hand-collected reels sheet.
var DefaultColumns = Columns{
	Type:     "tipo",
	Label:    "episodio",
	Sequence: "numero",
	Date:     "data_br",
	Views:    "views_br",
}

// CSVReader reads RawRows from a delimited text file with a header row.
type CSVReader struct {
	path      string
	delimiter rune
	columns   Columns
}

// NewCSVReader creates a reader for path. A zero delimiter means ','.
func NewCSVReader(path string, delimiter rune, columns Columns) *CSVReader {
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVReader{path: path, delimiter: delimiter, columns: columns}
}

// ReadRows opens the file and returns every data row.
func (c *CSVReader) ReadRows() ([]*models.RawRow, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", c.path, err)
	}
	defer f.Close()

	rows, err := c.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("csv: %s: %w", c.path, err)
	}
	return rows, nil
}

// Decode parses rows from r.
func (c *CSVReader) Decode(r io.Reader) ([]*models.RawRow, error) {
	cr := csv.NewReader(r)
	cr.Comma = c.delimiter
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("read header: empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := c.columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []*models.RawRow
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		rows = append(rows, &models.RawRow{
			Line:     line,
			Type:     cell(rec, idx.typ),
			Label:    cell(rec, idx.label),
			Sequence: cell(rec, idx.seq),
			Date:     cell(rec, idx.date),
			Views:    cell(rec, idx.views),
		})
	}
	return rows, nil
}

type columnIndex struct {
	typ, label, seq, date, views int
}

func (c *CSVReader) columnIndex(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}

	lookup := func(name string, required bool) (int, error) {
		i, ok := pos[strings.ToLower(name)]
		if !ok {
			if required {
				return -1, fmt.Errorf("%w %q", ErrMissingColumn, name)
			}
			return -1, nil
		}
		return i, nil
	}

	var idx columnIndex
	var err error
	if idx.typ, err = lookup(c.columns.Type, true); err != nil {
		return idx, err
	}
	if idx.label, err = lookup(c.columns.Label, true); err != nil {
		return idx, err
	}
	if idx.seq, err = lookup(c.columns.Sequence, false); err != nil {
		return idx, err
	}
	if idx.date, err = lookup(c.columns.Date, true); err != nil {
		return idx, err
	}
	if idx.views, err = lookup(c.columns.Views, true); err != nil {
		return idx, err
	}
	return idx, nil
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}
