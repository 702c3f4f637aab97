package main

import (
	"flag"
	"fmt"
	"os"

	"hist2json/internal/app"
)

func main() {
	var (
		configFile string
		input      string
		output     string
		rangeStart string
		rangeEnd   string
		follow     bool
		docStore   bool
	)

	flag.StringVar(&configFile, "config", "", "Path to configuration file")
	flag.StringVar(&input, "input", "", "Path to the history log file to decode (overrides config)")
	flag.StringVar(&output, "output", "", "Path to write decoded records to (overrides config)")
	flag.StringVar(&rangeStart, "range-start", "", "Inclusive lower timestamp bound (overrides config)")
	flag.StringVar(&rangeEnd, "range-end", "", "Exclusive upper timestamp bound (overrides config)")
	flag.BoolVar(&follow, "follow", false, "Follow the input file for new lines as they arrive")
	flag.BoolVar(&docStore, "document-store", false, "Emit newline-delimited JSON instead of a JSON array")
	flag.Parse()

	if configFile == "" {
		configFile = os.Getenv("HIST2JSON_CONFIG_FILE")
	}

	if input != "" {
		os.Setenv("HIST2JSON_INPUT", input)
	}
	if output != "" {
		os.Setenv("HIST2JSON_OUTPUT", output)
	}
	if rangeStart != "" {
		os.Setenv("HIST2JSON_RANGE_START", rangeStart)
	}
	if rangeEnd != "" {
		os.Setenv("HIST2JSON_RANGE_END", rangeEnd)
	}
	if follow {
		os.Setenv("HIST2JSON_FOLLOW", "true")
	}
	if docStore {
		os.Setenv("HIST2JSON_DOCUMENT_STORE", "true")
	}

	application, err := app.New(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hist2json: failed to initialize: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "hist2json: %v\n", err)
		os.Exit(1)
	}
}
