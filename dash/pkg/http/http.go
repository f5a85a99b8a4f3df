// Package http serves the dashboard page, the embeddable charts, and a small
// JSON API over the loaded reading collection.
package http

import (
	"html/template"
	"net/http"

	"glucodash/dash/defs"
	"glucodash/dash/pkg/charts"
	"glucodash/dash/pkg/stats"
	"glucodash/dash/sheets"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server holds the single load's outcome. The collection is immutable once
// the server is constructed; there is no reload endpoint.
type Server struct {
	Readings   []defs.Reading
	Stats      stats.Summary
	Provenance sheets.Source
	LoadErr    error

	Logger *zap.Logger
	Addr   string
}

func New(rs []defs.Reading, s stats.Summary, src sheets.Source, loadErr error, addr string, logger *zap.Logger) *Server {
	return &Server{
		Readings:   rs,
		Stats:      s,
		Provenance: src,
		LoadErr:    loadErr,
		Logger:     logger,
		Addr:       addr,
	}
}

func (s *Server) Serve() error {
	return s.Router().Run(s.Addr)
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/", s.dashboard)
	r.GET("/chart", s.chart)
	r.GET("/api/readings", s.apiReadings)
	r.GET("/api/stats", s.apiStats)
	r.GET("/api/health", s.apiHealth)

	return r
}

type dashboardData struct {
	State      string // "error", "empty", or "ready"
	ErrMsg     string
	Kind       charts.Kind
	ToggleKind charts.Kind
	Readings   []defs.Reading
	Stats      stats.Summary
	Provenance sheets.Source
}

func (s *Server) dashboard(c *gin.Context) {
	kind, err := charts.ParseKind(c.Query("kind"))
	if err != nil {
		c.String(http.StatusBadRequest, "%v", err)
		return
	}

	data := dashboardData{
		State:      "ready",
		Kind:       kind,
		ToggleKind: charts.KindBar,
		Readings:   s.Readings,
		Stats:      s.Stats,
		Provenance: s.Provenance,
	}
	if kind == charts.KindBar {
		data.ToggleKind = charts.KindLine
	}

	switch {
	case s.LoadErr != nil:
		data.State = "error"
		data.ErrMsg = s.LoadErr.Error()
	case len(s.Readings) == 0:
		data.State = "empty"
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := dashboardTmpl.Execute(c.Writer, data); err != nil {
		s.Logger.Error("unable to render dashboard", zap.Error(err))
	}
}

func (s *Server) chart(c *gin.Context) {
	kind, err := charts.ParseKind(c.Query("kind"))
	if err != nil {
		c.String(http.StatusBadRequest, "%v", err)
		return
	}
	if s.LoadErr != nil || len(s.Readings) == 0 {
		c.String(http.StatusNotFound, "no readings to chart")
		return
	}

	chart, err := charts.New(kind, s.Readings)
	if err != nil {
		c.String(http.StatusBadRequest, "%v", err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := chart.Render(c.Writer); err != nil {
		s.Logger.Error("unable to render chart", zap.Error(err))
	}
}

func (s *Server) apiReadings(c *gin.Context) {
	if s.LoadErr != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": s.LoadErr.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"source":   s.Provenance,
		"readings": s.Readings,
	})
}

func (s *Server) apiStats(c *gin.Context) {
	if s.LoadErr != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": s.LoadErr.Error()})
		return
	}
	c.JSON(http.StatusOK, s.Stats)
}

func (s *Server) apiHealth(c *gin.Context) {
	status := "ok"
	resp := gin.H{
		"source":   s.Provenance,
		"readings": len(s.Readings),
	}
	if s.LoadErr != nil {
		status = "load failed"
		resp["error"] = s.LoadErr.Error()
	}
	resp["status"] = status
	c.JSON(http.StatusOK, resp)
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Blood Glucose Dashboard</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
.cards { display: flex; gap: 1rem; margin: 1rem 0; }
.card { border: 1px solid #ddd; border-radius: 8px; padding: 1rem; min-width: 12rem; }
.card h3 { margin-top: 0; text-transform: capitalize; }
.error { color: #b00020; border: 1px solid #b00020; padding: 1rem; border-radius: 8px; }
.empty { color: #555; border: 1px dashed #999; padding: 1rem; border-radius: 8px; }
table { border-collapse: collapse; margin: 1rem 0; }
th, td { border: 1px solid #ddd; padding: 0.4rem 0.8rem; text-align: left; }
iframe { border: none; width: 100%; height: 560px; }
.meta { color: #777; font-size: 0.9rem; }
</style>
</head>
<body>
<h1>Blood Glucose Dashboard</h1>
{{if eq .State "error"}}
<div class="error">
<p>Could not load readings: {{.ErrMsg}}</p>
<p>Place a CSV file at <code>assets/glucose.csv</code> with the columns
<code>date, sugarLevel, type, time, notes</code>, or configure a sheet ID.</p>
</div>
{{else if eq .State "empty"}}
<div class="empty">
<p>No readings yet. The file loaded but contained no valid rows; every reading
needs a parseable date and a positive sugar level.</p>
</div>
{{else}}
<p class="meta">source: {{.Provenance}} · {{len .Readings}} readings ·
<a href="/?kind={{.ToggleKind}}">switch to {{.ToggleKind}} chart</a></p>
<div class="cards">
<div class="card"><h3>overall</h3>
<p>count: {{.Stats.Overall.Count}}</p>
<p>average: {{.Stats.Overall.AverageString}}</p>
<p>max: {{.Stats.Overall.MaxString}} · min: {{.Stats.Overall.MinString}}</p>
</div>
<div class="card"><h3>fasting</h3>
<p>count: {{.Stats.Fasting.Count}}</p>
<p>average: {{.Stats.Fasting.AverageString}}</p>
<p>max: {{.Stats.Fasting.MaxString}} · min: {{.Stats.Fasting.MinString}}</p>
</div>
<div class="card"><h3>random</h3>
<p>count: {{.Stats.Random.Count}}</p>
<p>average: {{.Stats.Random.AverageString}}</p>
<p>max: {{.Stats.Random.MaxString}} · min: {{.Stats.Random.MinString}}</p>
</div>
</div>
<iframe src="/chart?kind={{.Kind}}"></iframe>
<h2>Reference ranges (mg/dL)</h2>
<table>
<tr><th>Context</th><th>Normal</th><th>Prediabetes</th><th>Diabetes</th></tr>
<tr><td>Fasting</td><td>below 100</td><td>100 to 125</td><td>126 or above</td></tr>
<tr><td>Post-meal / random</td><td>below 140</td><td>140 to 199</td><td>200 or above</td></tr>
</table>
<h2>Readings</h2>
<table>
<tr><th>#</th><th>When</th><th>Sugar level</th><th>Type</th><th>Notes</th></tr>
{{range .Readings}}
<tr><td>{{.Index}}</td><td>{{.DisplayLabel}}</td><td>{{.SugarLevel}}</td><td>{{.Type}}</td><td>{{.Notes}}</td></tr>
{{end}}
</table>
{{end}}
</body>
</html>
`))
