package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"reels-chart/models"
)

// MatrixCSVWriter writes the per-date, per-label series matrix as CSV.
type MatrixCSVWriter struct {
	path string
}

func NewMatrixCSVWriter(path string) *MatrixCSVWriter {
	return &MatrixCSVWriter{path: path}
}

// WriteMatrix writes a "date,total,<label...>" header followed by one row per
// date. Labels appear in rank order. Intermediate directories are created.
func (m *MatrixCSVWriter) WriteMatrix(a *models.Aggregate) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(m.path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", m.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := append([]string{"date", "total"}, a.Labels()...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	for i, d := range a.Daily {
		row := make([]string, 0, len(header))
		row = append(row, d.Date.Format("2006-01-02"), strconv.FormatInt(d.Views, 10))
		for _, s := range a.Series {
			row = append(row, strconv.FormatInt(s.Values[i], 10))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	return f.Close()
}
