package stats

import (
	"math"
	"strconv"

	"glucodash/dash/defs"

	"github.com/montanaflynn/stats"
)

// NotAvailable is the display sentinel for empty groups.
const NotAvailable = "not available"

// Group holds summary statistics over the sugar levels of one partition.
// Average is pre-rounded to one decimal for display; Max and Min are not.
type Group struct {
	Average   float64 `json:"average"`
	Max       float64 `json:"max"`
	Min       float64 `json:"min"`
	Count     int     `json:"count"`
	Available bool    `json:"available"`
}

type Summary struct {
	Overall Group `json:"overall"`
	Fasting Group `json:"fasting"`
	Random  Group `json:"random"`
}

// Summarize partitions readings by type and computes per-group statistics.
// UNKNOWN readings count toward Overall only.
func Summarize(rs []defs.Reading) Summary {
	overall := make([]float64, 0, len(rs))
	var fasting, random []float64

	for _, r := range rs {
		overall = append(overall, r.SugarLevel)
		switch r.Type {
		case defs.Fasting:
			fasting = append(fasting, r.SugarLevel)
		case defs.Random:
			random = append(random, r.SugarLevel)
		}
	}

	return Summary{
		Overall: summarize(overall),
		Fasting: summarize(fasting),
		Random:  summarize(random),
	}
}

func summarize(levels []float64) Group {
	if len(levels) == 0 {
		return Group{}
	}

	avg, _ := stats.Mean(levels)
	max, _ := stats.Max(levels)
	min, _ := stats.Min(levels)

	return Group{
		Average:   math.Round(avg*10) / 10,
		Max:       max,
		Min:       min,
		Count:     len(levels),
		Available: true,
	}
}

// AverageString formats the average with one decimal, or the sentinel.
func (g Group) AverageString() string {
	if !g.Available {
		return NotAvailable
	}
	return strconv.FormatFloat(g.Average, 'f', 1, 64)
}

func (g Group) MaxString() string {
	if !g.Available {
		return NotAvailable
	}
	return strconv.FormatFloat(g.Max, 'f', -1, 64)
}

func (g Group) MinString() string {
	if !g.Available {
		return NotAvailable
	}
	return strconv.FormatFloat(g.Min, 'f', -1, 64)
}
