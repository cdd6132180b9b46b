package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"vosummary/pkg/report"
)

func main() {
	contactsFile := flag.String("contacts", "", "contacts yaml file")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		printUsage()
		os.Exit(2)
	}
	indir := args[0]

	out := os.Stdout
	if len(args) == 2 {
		f, err := os.Create(args[1])
		if err != nil {
			log.Fatalf("Failed to open output file: %v", err)
		}
		defer f.Close()
		out = f
	}

	// The command-line feed is always the authorized view; sensitive
	// contact fields are gated further downstream by who may read the
	// generated file.
	xmlText, err := report.BuildSummaryXML(indir, *contactsFile, true)
	if err != nil {
		log.Fatalf("Failed to build VO summary: %v", err)
	}

	if _, err := fmt.Fprintln(out, xmlText); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: vosummary [flags] <indir> [outfile]

Builds the VOSummary XML feed from per-VO yaml files.

Arguments:
  indir    input directory for virtual-organizations data
  outfile  output file for the feed (default: standard output)

Flags:
  -contacts <file>  contacts yaml file for authorized contact details
`)
}
