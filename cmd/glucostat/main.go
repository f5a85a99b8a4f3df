// glucostat runs the load pipeline once and prints the summary statistics
// and reference ranges as text tables.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"glucodash/dash"
	"glucodash/dash/defs"
	"glucodash/dash/pkg/desc"
	"glucodash/dash/sheets"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var configFile string

func init() {
	flag.StringVar(&configFile, "f", "config.yaml", "config file")
	flag.Parse()
}

func main() {
	logger, _ := zap.NewDevelopment()
	config := defs.Config{Logger: logger}

	if file, err := ioutil.ReadFile(configFile); err == nil {
		if err = yaml.Unmarshal(file, &config); err != nil {
			panic(err)
		}
	}
	config.ApplyDefaults()

	godotenv.Load()
	if id := os.Getenv("GLUCODASH_SHEET_ID"); id != "" {
		config.Sheet.ID = id
	}

	ctx, cancel := context.WithTimeout(context.Background(), defs.FetchTimeout)
	defer cancel()

	loader := sheets.New(config.Sheet.ID, config.Sheet.FallbackPath, logger)
	snap, err := dash.Load(ctx, loader, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("source: %s, readings: %d\n\n", snap.Source, len(snap.Readings))
	fmt.Println(desc.StatsTable(snap.Stats))
	fmt.Println()
	fmt.Println(desc.ReferenceTable())
}
