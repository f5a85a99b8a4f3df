package main

import (
	"flag"
	"io/ioutil"
	"os"

	"glucodash/dash"
	"glucodash/dash/defs"

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

	// The config file is optional; with no sheet configured the loader goes
	// straight to the local fallback.
	if file, err := ioutil.ReadFile(configFile); err == nil {
		if err = yaml.Unmarshal(file, &config); err != nil {
			panic(err)
		}
		logger.Debug("loaded config file", zap.String("file", configFile))
	} else {
		logger.Debug("no config file, using defaults", zap.String("file", configFile))
	}

	godotenv.Load()
	if id := os.Getenv("GLUCODASH_SHEET_ID"); id != "" {
		config.Sheet.ID = id
	}

	if err := dash.Run(config); err != nil {
		panic(err)
	}
}
