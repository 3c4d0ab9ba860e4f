// Command timetable prints departure boards and earliest-arrival
// connections from a catalog file or the built-in sample.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/mini-rodalies-3d/timetable/internal/catalog"
	"github.com/mini-rodalies-3d/timetable/internal/planner"
	"github.com/mini-rodalies-3d/timetable/internal/search"
	"github.com/mini-rodalies-3d/timetable/internal/timetable"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("timetable", flag.ContinueOnError)
	from := fs.String("from", "", "origin station tag")
	to := fs.String("to", "", "destination station tag")
	at := fs.String("at", "", "earliest departure, HH:MM")
	departures := fs.String("departures", "", "print the departure board of this station tag")
	catalogPath := fs.String("catalog", "", "YAML catalog (default: built-in sample)")
	frontierFlag := fs.String("frontier", "scan", "search frontier: scan or heap")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	c := catalog.Sample()
	if *catalogPath != "" {
		var err error
		if c, err = catalog.LoadFile(*catalogPath); err != nil {
			log.Printf("Error: %v", err)
			return 1
		}
	}

	tt, err := c.Build()
	if err != nil {
		log.Printf("Error: %v", err)
		return 1
	}

	frontier, err := search.ParseFrontierKind(*frontierFlag)
	if err != nil {
		log.Printf("Error: %v", err)
		return 1
	}
	p := planner.New(tt, planner.WithFrontier(frontier))
	ctx := context.Background()

	switch {
	case *departures != "":
		board, err := p.Departures(ctx, *departures, *at)
		if err != nil {
			log.Printf("Error: %v", err)
			return 1
		}
		station, _ := p.Station(*departures)
		printDepartures(out, station, board)
	case *from != "" && *to != "":
		res, err := p.Connection(ctx, *from, *to, *at)
		if err != nil {
			log.Printf("Error: %v", err)
			return 1
		}
		printConnection(out, res)
	default:
		fs.Usage()
		return 2
	}

	return 0
}

func printDepartures(out io.Writer, station *timetable.Station, board []timetable.Departure) {
	fmt.Fprintf(out, "%s (%s)\n", station.Name, station.Tag)
	if len(board) == 0 {
		fmt.Fprintln(out, "no departures")
		return
	}

	w := tabwriter.NewWriter(out, 5, 3, 3, ' ', 0)
	fmt.Fprintln(w, "time\tline\tdirection")
	for _, d := range board {
		fmt.Fprintf(w, "%s\t%s\t%s\n", d.Time, d.Line.Name(), d.Direction())
	}
	w.Flush()
}

func printConnection(out io.Writer, res *search.Result) {
	q := res.Query
	if !res.Found {
		fmt.Fprintf(out, "no connection from %s to %s after %s\n", q.From.Name, q.To.Name, q.Start)
		return
	}

	fmt.Fprintf(out, "%s -> %s, leaving after %s, arriving %s\n", q.From.Name, q.To.Name, q.Start, res.Arrival)

	w := tabwriter.NewWriter(out, 5, 3, 3, ' ', 0)
	fmt.Fprintln(w, "# line\tfrom\tdeparture\tto\tarrival")
	for i, seg := range res.Segments {
		fmt.Fprintf(w, "%d %s\t%s\t%s\t%s\t%s\n", i+1, seg.Line.Name(),
			seg.Board.Station().Name, seg.Departure(), seg.Alight.Station().Name, seg.Arrival())
	}
	w.Flush()
}
