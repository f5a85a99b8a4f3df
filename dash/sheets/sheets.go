package sheets

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"glucodash/dash/defs"

	"go.uber.org/zap"
)

const exportURL = "https://docs.google.com/spreadsheets/d/%s/export?format=csv"

// Source labels the provenance of fetched CSV text.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

type Loader interface {
	Fetch(ctx context.Context) (string, Source, error)
}

// Client retrieves CSV text from a published Google Sheet, falling back to a
// local file when the sheet is unconfigured or unreachable. Exactly one
// fallback attempt, no retries, no caching.
type Client struct {
	client       *http.Client
	logger       *zap.Logger
	sheetID      string
	fallbackPath string
}

func New(sheetID, fallbackPath string, logger *zap.Logger) *Client {
	return &Client{
		client:       &http.Client{},
		logger:       logger,
		sheetID:      sheetID,
		fallbackPath: fallbackPath,
	}
}

func (c *Client) Fetch(ctx context.Context) (string, Source, error) {
	var remoteErr error
	if c.sheetID != "" {
		text, err := c.fetchRemote(ctx)
		if err == nil {
			return text, SourceRemote, nil
		}
		remoteErr = err
		c.logger.Debug("remote fetch failed, trying local fallback",
			zap.String("sheetID", c.sheetID),
			zap.Error(err),
		)
	}

	text, localErr := c.fetchLocal()
	if localErr == nil {
		return text, SourceLocal, nil
	}

	cols := strings.Join(defs.RequiredColumns, ", ")
	if remoteErr != nil {
		return "", "", fmt.Errorf(
			"all sources failed: sheet %q: %v; file %q: %v; expected a delimited file with columns %s",
			c.sheetID, remoteErr, c.fallbackPath, localErr, cols,
		)
	}
	return "", "", fmt.Errorf(
		"unable to read %q: %w; expected a delimited file with columns %s",
		c.fallbackPath, localErr, cols,
	)
}

func (c *Client) fetchRemote(ctx context.Context) (string, error) {
	url := fmt.Sprintf(exportURL, c.sheetID)

	c.logger.Debug("fetching sheet export", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from sheet export", resp.StatusCode)
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	c.logger.Debug("received sheet export", zap.Int("bytes", len(body)))

	return string(body), nil
}

func (c *Client) fetchLocal() (string, error) {
	b, err := ioutil.ReadFile(c.fallbackPath)
	if err != nil {
		return "", err
	}

	c.logger.Debug("read local fallback",
		zap.String("path", c.fallbackPath),
		zap.Int("bytes", len(b)),
	)

	return string(b), nil
}
