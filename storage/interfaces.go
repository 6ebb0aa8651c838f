package storage

import (
	"image"

	"reels-chart/models"
)

// RowReader is the interface any tabular input source must satisfy.
type RowReader interface {
	ReadRows() ([]*models.RawRow, error)
}

// ImageWriter persists a rendered chart.
type ImageWriter interface {
	WriteImage(path string, img image.Image) error
}

// MatrixWriter persists the aggregated series matrix.
type MatrixWriter interface {
	WriteMatrix(a *models.Aggregate) error
}
