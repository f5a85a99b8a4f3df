// Package charts renders the glucose series as an embeddable echarts
// document, in either line or bar form, with the fixed reference thresholds
// drawn as mark lines.
package charts

import (
	"fmt"
	"io"

	"glucodash/dash/defs"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type Kind string

const (
	KindLine Kind = "line"
	KindBar  Kind = "bar"
)

func ParseKind(s string) (Kind, error) {
	switch s {
	case "", string(KindLine):
		return KindLine, nil
	case string(KindBar):
		return KindBar, nil
	default:
		return "", fmt.Errorf("unknown chart kind %q", s)
	}
}

// Renderer is satisfied by every go-echarts chart.
type Renderer interface {
	Render(w io.Writer) error
}

func New(kind Kind, rs []defs.Reading) (Renderer, error) {
	switch kind {
	case KindLine:
		return Line(rs), nil
	case KindBar:
		return Bar(rs), nil
	default:
		return nil, fmt.Errorf("unknown chart kind %q", kind)
	}
}

func Line(rs []defs.Reading) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOptions()...)

	data := make([]opts.LineData, len(rs))
	for i, r := range rs {
		data[i] = opts.LineData{Value: r.SugarLevel}
	}

	line.SetXAxis(labels(rs)).
		AddSeries("sugar level", data,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(true)}),
		)
	addThresholds(line)
	return line
}

func Bar(rs []defs.Reading) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOptions()...)

	data := make([]opts.BarData, len(rs))
	for i, r := range rs {
		data[i] = opts.BarData{Value: r.SugarLevel}
	}

	bar.SetXAxis(labels(rs)).AddSeries("sugar level", data)
	addThresholds(bar)
	return bar
}

func globalOptions() []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Blood Glucose",
			Width:     "1100px",
			Height:    "520px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Blood Glucose",
			Subtitle: "mg/dL over time",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "mg/dL"}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 40},
		}),
	}
}

func labels(rs []defs.Reading) []string {
	ls := make([]string, len(rs))
	for i, r := range rs {
		ls[i] = r.DisplayLabel
	}
	return ls
}

type seriesHolder interface {
	SetSeriesOptions(opts ...charts.SeriesOpts)
}

func addThresholds(c seriesHolder) {
	c.SetSeriesOptions(
		charts.WithMarkLineNameYAxisItemOpts(
			opts.MarkLineNameYAxisItem{Name: "normal fasting", YAxis: defs.ThresholdNormalFasting},
			opts.MarkLineNameYAxisItem{Name: "normal post-meal", YAxis: defs.ThresholdNormalPostMeal},
			opts.MarkLineNameYAxisItem{Name: "diabetes", YAxis: defs.ThresholdDiabetesRandom},
		),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol: []string{"none", "none"},
			Label:  &opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"},
		}),
	)
}
