// Command avclog is a tool for viewing AV/C protocol capture files.
//
// Capture files are created by pkg/log's FileLogger: a CBOR stream of
// transaction events recorded by an engine.
//
// Usage:
//
//	avclog <command> [flags] <file.avclog>
//
// Commands:
//
//	view     View capture file in human-readable format
//	stats    Show event counts per category
//
// Examples:
//
//	# View all events
//	avclog view device.avclog
//
//	# View only incoming frames for one opcode
//	avclog view -direction in -opcode 0x30 device.avclog
//
//	# Show statistics
//	avclog stats device.avclog
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/firewire-audio/avc-go/pkg/log"
)

const usage = `avclog - AV/C protocol capture viewer

Usage:
  avclog <command> [flags] <file.avclog>

Commands:
  view     View capture file in human-readable format
  stats    Show event counts per category

Use "avclog <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	engineID := fs.String("engine", "", "filter by engine ID")
	direction := fs.String("direction", "", "filter by direction (in or out)")
	opcode := fs.String("opcode", "", "filter frames by opcode (hex accepted)")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "view: exactly one capture file required")
		os.Exit(1)
	}

	filter := log.Filter{EngineID: *engineID}
	switch strings.ToLower(*direction) {
	case "":
	case "in":
		d := log.DirectionIn
		filter.Direction = &d
	case "out":
		d := log.DirectionOut
		filter.Direction = &d
	default:
		fmt.Fprintf(os.Stderr, "view: unknown direction %q\n", *direction)
		os.Exit(1)
	}
	if *opcode != "" {
		v, err := strconv.ParseUint(*opcode, 0, 8)
		if err != nil {
			fmt.Fprintf(os.Stderr, "view: invalid opcode %q\n", *opcode)
			os.Exit(1)
		}
		o := uint8(v)
		filter.Opcode = &o
	}

	if err := forEachEvent(fs.Arg(0), filter, printEvent); err != nil {
		fmt.Fprintf(os.Stderr, "view: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "stats: exactly one capture file required")
		os.Exit(1)
	}

	total := 0
	counts := make(map[log.Category]int)
	engines := make(map[string]struct{})
	err := forEachEvent(fs.Arg(0), log.Filter{}, func(event log.Event) {
		total++
		counts[event.Category]++
		engines[event.EngineID] = struct{}{}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("events:  %d\n", total)
	fmt.Printf("engines: %d\n", len(engines))
	for _, cat := range []log.Category{
		log.CategoryFrame, log.CategoryInterim, log.CategoryRetry, log.CategoryError,
	} {
		fmt.Printf("%-8s %d\n", strings.ToLower(cat.String())+":", counts[cat])
	}
}

func forEachEvent(path string, filter log.Filter, fn func(log.Event)) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		fn(event)
	}
}

func printEvent(event log.Event) {
	ts := event.Timestamp.Format("15:04:05.000000")

	switch {
	case event.Frame != nil:
		fmt.Printf("%s %s %-7s hdr=0x%02x addr=0x%02x opcode=0x%02x % 02x\n",
			ts, event.Direction, event.Category,
			event.Frame.Header, event.Frame.Addr, event.Frame.Opcode, event.Frame.Data)
	case event.Retry != nil:
		fmt.Printf("%s %s %-7s attempt=%d delay=%v\n",
			ts, event.Direction, event.Category, event.Retry.Attempt, event.Retry.Delay)
	case event.Error != nil:
		fmt.Printf("%s %s %-7s %s (%s)\n",
			ts, event.Direction, event.Category, event.Error.Message, event.Error.Context)
	default:
		fmt.Printf("%s %s %-7s\n", ts, event.Direction, event.Category)
	}
}
