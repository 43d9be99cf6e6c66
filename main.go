package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"driftbg/internal/engine"
	"driftbg/internal/ui"
)

func main() {
	blobs := flag.Int("blobs", 5, "number of animated background blobs")
	fps := flag.Int("fps", 60, "engine tick rate")
	seed := flag.Int64("seed", 0, "base speed seed (0 = random)")
	flag.Parse()

	cfg := engine.DefaultConfig()
	cfg.Blobs = *blobs
	cfg.FPS = *fps
	cfg.Seed = *seed

	eng, err := engine.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := eng.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer eng.Stop()

	program := tea.NewProgram(ui.New(eng), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
