// Package readings turns parsed rows into the normalized reading collection:
// validated, date-sorted, with de-duplicated display labels.
package readings

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"glucodash/dash/defs"
	"glucodash/dash/tabular"
)

const dayLabelFormat = "Jan 2"

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"1/2/2006",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	time.RFC3339,
}

// Normalize derives the reading collection from raw records. Rows with an
// unparseable date or a non-positive sugar level are dropped; survivors are
// stable-sorted by date and labeled. Deterministic for identical input.
func Normalize(records []tabular.Record) []defs.Reading {
	rs := make([]defs.Reading, 0, len(records))
	for _, rec := range records {
		date, err := parseDate(stringField(rec, "date"))
		if err != nil {
			continue
		}

		sugar := numericField(rec, "sugarLevel")
		if sugar <= 0 || math.IsNaN(sugar) {
			continue
		}

		rs = append(rs, defs.Reading{
			Date:       date,
			DateLabel:  date.Format(dayLabelFormat),
			SugarLevel: sugar,
			Type:       defs.ParseReadingType(stringField(rec, "type")),
			Time:       stringField(rec, "time"),
			Notes:      stringField(rec, "notes"),
		})
	}

	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].Date.Before(rs[j].Date)
	})

	// Second pass: first reading of a day keeps the bare day label, later
	// ones get their time-of-day, or an occurrence counter when untimed.
	// A time string already issued that day falls back to the counter so
	// labels stay pairwise distinct.
	seen := make(map[string]int)
	issued := make(map[string]bool)
	for i := range rs {
		rs[i].Index = i
		seen[rs[i].DateLabel]++

		var label string
		switch n := seen[rs[i].DateLabel]; {
		case n == 1:
			label = rs[i].DateLabel
		case rs[i].Time != "":
			label = fmt.Sprintf("%s (%s)", rs[i].DateLabel, rs[i].Time)
		default:
			label = fmt.Sprintf("%s (%d)", rs[i].DateLabel, n)
		}
		for n := seen[rs[i].DateLabel]; issued[label]; n++ {
			label = fmt.Sprintf("%s (%d)", rs[i].DateLabel, n)
		}
		issued[label] = true
		rs[i].DisplayLabel = label
	}

	return rs
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

func stringField(rec tabular.Record, name string) string {
	switch v := rec[name].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// numericField coerces a cell to float64, defaulting to 0 when absent or
// unparseable so the validity filter drops the row.
func numericField(rec tabular.Record, name string) float64 {
	switch v := rec[name].(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
