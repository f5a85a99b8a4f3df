package defs

import "time"

// ReadingType is the measurement context of a reading. Values other than
// FASTING and RANDOM in the source data collapse to UNKNOWN; matching is
// exact and case-sensitive.
type ReadingType string

const (
	Fasting ReadingType = "FASTING"
	Random  ReadingType = "RANDOM"
	Unknown ReadingType = "UNKNOWN"
)

func ParseReadingType(s string) ReadingType {
	switch s {
	case string(Fasting):
		return Fasting
	case string(Random):
		return Random
	default:
		return Unknown
	}
}

// Reading is one normalized blood-glucose measurement. SugarLevel is always
// positive; rows that fail that invariant never become Readings.
type Reading struct {
	Index        int         `json:"index"`
	Date         time.Time   `json:"date"`
	DateLabel    string      `json:"dateLabel"`
	DisplayLabel string      `json:"displayLabel"`
	SugarLevel   float64     `json:"sugarLevel"`
	Type         ReadingType `json:"type"`
	Time         string      `json:"time,omitempty"`
	Notes        string      `json:"notes,omitempty"`
}

// Reference thresholds in mg/dL. Fixed domain constants, not configuration.
const (
	ThresholdNormalFasting   = 100.0
	ThresholdNormalPostMeal  = 140.0
	ThresholdDiabetesFasting = 126.0
	ThresholdDiabetesRandom  = 200.0
)

// RequiredColumns is the header set a source file must carry. Extra columns
// are ignored.
var RequiredColumns = []string{"date", "sugarLevel", "type", "time", "notes"}
