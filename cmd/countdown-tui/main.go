// Countdown TUI: live Home and CR-V countdowns in a tabbed dashboard.
//
// Usage:
//
//	countdown-tui [flags]
//
// Flags:
//
//	--config   Path to config file (default: ~/.config/countdown/config.yml)
//	--log      Write debug logs to this file (default: discard)
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Mr-Dark-debug/countdown/internal/config"
	"github.com/Mr-Dark-debug/countdown/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	logPath := flag.String("log", "", "Write debug logs to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *logPath != "" {
		cfg.LogFile = *logPath
	}

	// The terminal belongs to the TUI while it runs.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "countdown")
		if err != nil {
			log.Fatalf("Failed to open log file %s: %v", cfg.LogFile, err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model := tui.NewModel(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
