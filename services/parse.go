package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	minYear = 1
	maxYear = 9999
)

var (
	// viewsRegexp matches "4800", "16.4k", "152k" after normalisation
	viewsRegexp = regexp.MustCompile(`^(\d+(?:\.\d+)?)(k)?$`)
	// dateRegexp matches "24 out", "1 nov"
	dateRegexp = regexp.MustCompile(`^(\d{1,2})\s+([a-z]{3})$`)
)

// monthsPT maps pt-BR three-letter month abbreviations to months.
var monthsPT = map[string]time.Month{
	"jan": time.January,
	"fev": time.February,
	"mar": time.March,
	"abr": time.April,
	"mai": time.May,
	"jun": time.June,
	"jul": time.July,
	"ago": time.August,
	"set": time.September,
	"out": time.October,
	"nov": time.November,
	"dez": time.December,
}

// ParseViews converts a locale-formatted view count into an integer.
// Examples:
//
//	"4800"  → 4800
//	"13,4k" → 13400 (comma decimal)
//	"16.4k" → 16400 (dot decimal)
//	"152k"  → 152000
//	"2,5"   → 2 (halves round to even)
func ParseViews(raw string) (int64, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.ReplaceAll(s, ",", ".")

	m := viewsRegexp.FindStringSubmatch(s)
	if m == nil {
		return 0, &FormatError{Field: "views", Input: raw}
	}

	num, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, &FormatError{Field: "views", Input: raw, Reason: err.Error()}
	}
	if m[2] == "k" {
		num *= 1000
	}

	rounded := math.RoundToEven(num)
	if rounded >= math.MaxInt64 {
		return 0, &FormatError{Field: "views", Input: raw, Reason: "value out of range"}
	}
	return int64(rounded), nil
}

// ParseDate converts a "D MMM" token such as "24 out" into a date in year.
func ParseDate(raw string, year int) (time.Time, error) {
	s := foldAccents(strings.ToLower(strings.TrimSpace(raw)))

	m := dateRegexp.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, &FormatError{Field: "date", Input: raw, Reason: "expected e.g. '24 out'"}
	}

	day, _ := strconv.Atoi(m[1])
	if year < minYear || year > maxYear {
		return time.Time{}, &DateRangeError{Input: raw, Year: year, Day: day}
	}
	month, ok := monthsPT[m[2]]
	if !ok {
		return time.Time{}, &FormatError{Field: "month", Input: raw, Reason: "unknown abbreviation " + strconv.Quote(m[2])}
	}

	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if day < 1 || d.Day() != day || d.Month() != month || d.Year() != year {
		return time.Time{}, &DateRangeError{Input: raw, Year: year, Month: month, Day: day}
	}
	return d, nil
}

// foldAccents strips combining marks so "fév" and "fev" compare equal.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
