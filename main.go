package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/df07/go-raycast/pkg/core"
	"github.com/df07/go-raycast/pkg/query"
)

func main() {
	// Parse command line flags
	queryPath := flag.String("query", "", "Path to a YAML or JSON query document")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = one per CPU)")
	verbose := flag.Bool("verbose", false, "Log progress to stderr")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help || *queryPath == "" {
		fmt.Println("Ray Caster")
		fmt.Println("Usage: go-raycast -query <file> [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Shape kinds: polygon, triangle, rectangle, regular, cuboid")
		fmt.Println("Results are written to stdout as JSON")
		if !*help {
			os.Exit(2)
		}
		return
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *queryPath, *workers, logger, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run loads the query document, casts every ray and writes the JSON report to out
func run(ctx context.Context, path string, workers int, logger core.Logger, out io.Writer) error {
	doc, err := query.Load(path)
	if err != nil {
		return err
	}

	q, err := query.Compile(doc)
	if err != nil {
		return err
	}

	report, err := query.NewRunner(workers, logger).Run(ctx, q)
	if err != nil {
		return fmt.Errorf("query cancelled: %w", err)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
