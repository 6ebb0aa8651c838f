package services

import (
	"errors"
	"strconv"
	"time"

	"reels-chart/models"
	"reels-chart/utils"
)

func newTestLogger() *utils.Logger { return utils.NewDiscardLogger() }

func formatInt(n int64) string { return strconv.FormatInt(n, 10) }

func errorAs(err error, target any) bool { return errors.As(err, target) }

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

func row(line int, typ, label, seq, date, views string) *models.RawRow {
	return &models.RawRow{Line: line, Type: typ, Label: label, Sequence: seq, Date: date, Views: views}
}
