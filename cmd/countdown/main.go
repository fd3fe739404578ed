// Countdown CLI: print or stream the Home and CR-V countdowns.
//
// Usage:
//
//	countdown <command> [flags]
//
// Commands:
//
//	now       Render both countdowns once and print them
//	watch     Print field changes every second until interrupted
//	version   Print version information
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
	"syscall"

	"github.com/Mr-Dark-debug/countdown/internal/config"
	"github.com/Mr-Dark-debug/countdown/internal/countdown"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "now":
		cmdNow()
	case "watch":
		cmdWatch()
	case "version":
		fmt.Printf("countdown v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`countdown: Home and CR-V 2028 countdowns

Usage:
  countdown <command> [flags]

Commands:
  now      Render both countdowns once and print them
  watch    Print field changes every second until interrupted
  version  Print version information

Run 'countdown <command> --help' for details on each command.`)
}

var allFields = append([]string{countdown.FieldHome}, countdown.FixedFields...)

// snapshot is one render pass of both countdowns.
type snapshot struct {
	Home   string            `json:"home"`
	Fields map[string]string `json:"fields"`
	Labels map[string]string `json:"labels"`
}

func render(cfg config.Config, clock countdown.Clock) snapshot {
	s := countdown.NewMapSurface(allFields...)
	(&countdown.HomeRenderer{Target: cfg.HomeTarget, Clock: clock, Surface: s}).Render()
	(&countdown.FixedRenderer{Target: cfg.FixedTarget, Clock: clock, Surface: s}).Render()

	snap := snapshot{
		Home:   s.Text(countdown.FieldHome),
		Fields: make(map[string]string),
		Labels: make(map[string]string),
	}
	for _, id := range countdown.FixedFields {
		snap.Fields[id] = s.Text(id)
		snap.Labels[id] = s.Label(id)
	}
	return snap
}

func writeText(w io.Writer, snap snapshot) {
	fmt.Fprintf(w, "Home:      %s\n", snap.Home)
	fmt.Fprint(w, "CR-V 2028:")
	for _, id := range countdown.FixedFields {
		if label := snap.Labels[id]; label != "" {
			fmt.Fprintf(w, " %s %s", snap.Fields[id], label)
		} else {
			fmt.Fprintf(w, " %s", snap.Fields[id])
		}
	}
	fmt.Fprintln(w)
}

func writeJSON(w io.Writer, snap snapshot) error {
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// cmdNow renders a single pass and prints it.
func cmdNow() {
	fs := flag.NewFlagSet("now", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	outputFormat := fs.String("format", "text", "Output format: text, json")
	fs.Parse(os.Args[2:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	snap := render(cfg, countdown.RealClock{})

	switch *outputFormat {
	case "json":
		if err := writeJSON(os.Stdout, snap); err != nil {
			log.Fatalf("Failed to encode snapshot: %v", err)
		}
	case "text":
		writeText(os.Stdout, snap)
	default:
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", *outputFormat)
		os.Exit(1)
	}
}

// cmdWatch runs the scheduler against stdout until SIGINT or SIGTERM.
func cmdWatch() {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	fs.Parse(os.Args[2:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	surface := countdown.NewWriterSurface(os.Stdout, allFields...)
	sched := countdown.NewScheduler(cfg.Interval,
		countdown.NewHomeRenderer(cfg.HomeTarget, surface),
		countdown.NewFixedRenderer(cfg.FixedTarget, surface),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := sched.Start(ctx); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	<-ctx.Done()
	sched.Stop()
}
