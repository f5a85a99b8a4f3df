// Package tabular parses delimited text with a header row into untyped
// records. The delimiter is auto-detected, numeric-looking cells are inferred
// as float64, and row-level problems surface as warnings rather than errors.
package tabular

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

// Candidate delimiters, in precedence order for ties.
var delimiters = []rune{',', '\t', '|', ';'}

// Record is one data row keyed by trimmed header name. Values are float64
// when the cell parses as a number, string otherwise.
type Record map[string]interface{}

type Warning struct {
	Line    int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

type Result struct {
	Columns   []string
	Records   []Record
	Delimiter rune
	Warnings  []Warning
}

// DetectDelimiter scores the candidate delimiters against the header line
// and returns the most frequent one, defaulting to comma.
func DetectDelimiter(header string) rune {
	best, bestCount := ',', 0
	for _, d := range delimiters {
		if n := strings.Count(header, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// Parse reads delimited text with a header row. A missing header or an
// unreadable body is a structural error; short or long rows only produce
// warnings, with missing cells left absent and extra cells dropped.
func Parse(text string) (*Result, error) {
	header, ok := firstLine(text)
	if !ok {
		return nil, fmt.Errorf("structural parse failure: no header row")
	}
	delim := DetectDelimiter(header)

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("structural parse failure: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("structural parse failure: no header row")
	}

	res := &Result{Delimiter: delim}
	res.Columns = make([]string, len(rows[0]))
	for i, name := range rows[0] {
		res.Columns[i] = strings.TrimSpace(name)
	}

	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header
		if blank(row) {
			continue
		}
		if len(row) != len(res.Columns) {
			res.Warnings = append(res.Warnings, Warning{
				Line:    line,
				Message: fmt.Sprintf("expected %d fields, got %d", len(res.Columns), len(row)),
			})
		}

		rec := make(Record, len(res.Columns))
		for j, name := range res.Columns {
			if name == "" || j >= len(row) {
				continue
			}
			rec[name] = infer(row[j])
		}
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

func infer(cell string) interface{} {
	s := strings.TrimSpace(cell)
	if s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func firstLine(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			return line, true
		}
	}
	return "", false
}
