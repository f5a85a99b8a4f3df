// Package dash wires the load pipeline: fetch raw text, parse rows,
// normalize readings, compute statistics, then hand everything to the
// presentation layer. The pipeline runs exactly once per process.
package dash

import (
	"context"
	"fmt"

	"glucodash/dash/defs"
	httpserver "glucodash/dash/pkg/http"
	"glucodash/dash/pkg/stats"
	"glucodash/dash/readings"
	"glucodash/dash/sheets"
	"glucodash/dash/tabular"

	"go.uber.org/zap"
)

// Snapshot is the outcome of one load: the normalized collection and its
// derived statistics. Both are pure derivations of the raw text and are
// never mutated afterwards.
type Snapshot struct {
	Readings []defs.Reading
	Stats    stats.Summary
	Source   sheets.Source
}

// Load runs the pipeline once. A fetch failure on both sources or a
// structural parse failure is a terminal error; row-level problems only log.
func Load(ctx context.Context, loader sheets.Loader, logger *zap.Logger) (*Snapshot, error) {
	text, src, err := loader.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	res, err := tabular.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s data: %w", src, err)
	}
	for _, w := range res.Warnings {
		logger.Warn("parse warning", zap.Int("line", w.Line), zap.String("message", w.Message))
	}

	rs := readings.Normalize(res.Records)
	if dropped := len(res.Records) - len(rs); dropped > 0 {
		logger.Info("dropped invalid rows", zap.Int("dropped", dropped))
	}
	if len(rs) == 0 {
		logger.Info("no valid readings after normalization")
	}

	return &Snapshot{
		Readings: rs,
		Stats:    stats.Summarize(rs),
		Source:   src,
	}, nil
}

// Run performs the single load and serves the dashboard. A terminal load
// error does not abort the process; the server renders the error state.
func Run(config defs.Config) error {
	config.ApplyDefaults()
	logger := config.Logger

	loader := sheets.New(config.Sheet.ID, config.Sheet.FallbackPath, logger)

	ctx, cancel := context.WithTimeout(context.Background(), defs.FetchTimeout)
	defer cancel()

	var srv *httpserver.Server
	snap, err := Load(ctx, loader, logger)
	if err != nil {
		logger.Error("load failed, serving error state", zap.Error(err))
		srv = httpserver.New(nil, stats.Summary{}, "", err, config.Server.Addr, logger)
	} else {
		logger.Info("load complete",
			zap.String("source", string(snap.Source)),
			zap.Int("readings", len(snap.Readings)),
		)
		srv = httpserver.New(snap.Readings, snap.Stats, snap.Source, nil, config.Server.Addr, logger)
	}

	return srv.Serve()
}
